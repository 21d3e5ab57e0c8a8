package panels

import (
	"context"
	"strings"
	"sync"

	"jnv/console/internal/api"
)

type Events struct {
	api    *api.Client
	status *StatusLine

	gate  loadGate
	mu    sync.Mutex
	items []api.Event
}

func NewEvents(client *api.Client, status *StatusLine) *Events {
	return &Events{api: client, status: status}
}

func (p *Events) Load(ctx context.Context) {
	ticket := p.gate.begin()
	p.status.Set("Loading events...")

	items, err := p.api.ListEvents(ctx)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Events loaded.")
}

func (p *Events) Create(ctx context.Context, in api.CreateEventInput) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.EventDate) == "" {
		p.status.Set("Please enter event title and event date.")
		return
	}

	p.status.Set("Creating event draft...")
	if _, err := p.api.CreateEvent(ctx, in); err != nil {
		p.status.Fail(err)
		return
	}
	p.Load(ctx)
	p.status.Set("Event created as draft.")
}

func (p *Events) Publish(ctx context.Context, id string) {
	p.status.Set("Publishing event...")
	if err := p.api.PublishEvent(ctx, id); err != nil {
		p.status.Fail(err)
		return
	}
	p.Load(ctx)
	p.status.Set("Event published.")
}

func (p *Events) Delete(ctx context.Context, id string) {
	p.status.Set("Deleting event...")
	if err := p.api.DeleteEvent(ctx, id); err != nil {
		p.status.Fail(err)
		return
	}
	p.Load(ctx)
	p.status.Set("Event deleted.")
}

func (p *Events) Items() []api.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Event, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Events) setItems(items []api.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}
