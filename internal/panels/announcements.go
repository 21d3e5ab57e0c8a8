package panels

import (
	"context"
	"sync"

	"jnv/console/internal/api"
)

// Announcements manages the draft/publish/delete lifecycle. Mutations
// always reload the full list rather than patching local state.
type Announcements struct {
	api    *api.Client
	status *StatusLine

	gate  loadGate
	mu    sync.Mutex
	items []api.Announcement
}

func NewAnnouncements(client *api.Client, status *StatusLine) *Announcements {
	return &Announcements{api: client, status: status}
}

func (p *Announcements) Load(ctx context.Context) {
	ticket := p.gate.begin()
	p.status.Set("Loading announcements...")

	items, err := p.api.ListAnnouncements(ctx)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Announcements loaded.")
}

func (p *Announcements) Create(ctx context.Context, in api.CreateAnnouncementInput) {
	p.status.Set("Publishing announcement...")
	if _, err := p.api.CreateAnnouncement(ctx, in); err != nil {
		p.status.Fail(err)
		return
	}
	p.status.Set("Announcement created (pending publish).")
	p.Load(ctx)
}

func (p *Announcements) Publish(ctx context.Context, id string) {
	p.status.Set("Publishing announcement...")
	if err := p.api.PublishAnnouncement(ctx, id); err != nil {
		p.status.Fail(err)
		return
	}
	p.Load(ctx)
	p.status.Set("Announcement published.")
}

// Delete sends the destructive request. The interactive confirmation
// happens in the console layer before this is ever called.
func (p *Announcements) Delete(ctx context.Context, id string) {
	p.status.Set("Deleting announcement...")
	if err := p.api.DeleteAnnouncement(ctx, id); err != nil {
		p.status.Fail(err)
		return
	}
	p.Load(ctx)
	p.status.Set("Announcement deleted.")
}

func (p *Announcements) Items() []api.Announcement {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Announcement, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Announcements) setItems(items []api.Announcement) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}
