package panels

import (
	"context"
	"sync"

	"jnv/console/internal/api"
)

type Users struct {
	api    *api.Client
	status *StatusLine

	gate  loadGate
	mu    sync.Mutex
	items []api.User
}

func NewUsers(client *api.Client, status *StatusLine) *Users {
	return &Users{api: client, status: status}
}

func (p *Users) Load(ctx context.Context) {
	ticket := p.gate.begin()
	p.status.Set("Loading users...")

	items, err := p.api.ListUsers(ctx)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Users loaded.")
}

// UpdateRole sends the single-field role change and patches the local
// entry in place; no full reload.
func (p *Users) UpdateRole(ctx context.Context, id, role string) {
	p.status.Set("Updating user role...")
	if err := p.api.UpdateUserRole(ctx, id, role); err != nil {
		p.status.Fail(err)
		return
	}

	p.mu.Lock()
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].Role = role
		}
	}
	p.mu.Unlock()
	p.status.Set("User role updated.")
}

func (p *Users) Items() []api.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.User, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Users) setItems(items []api.User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}
