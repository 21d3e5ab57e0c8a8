package panels

import (
	"context"
	"sync"

	"jnv/console/internal/api"
)

// Approvals lists pending parent-link requests and approves them.
// An approval removes exactly that request from the local pending
// list; the server is not re-queried.
type Approvals struct {
	api    *api.Client
	status *StatusLine

	gate  loadGate
	mu    sync.Mutex
	items []api.ParentLink
}

func NewApprovals(client *api.Client, status *StatusLine) *Approvals {
	return &Approvals{api: client, status: status}
}

func (p *Approvals) Load(ctx context.Context) {
	ticket := p.gate.begin()
	p.status.Set("Loading pending parent links...")

	items, err := p.api.ListPendingLinks(ctx)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Pending links loaded.")
}

func (p *Approvals) Approve(ctx context.Context, id string) {
	p.status.Set("Approving parent link...")
	if err := p.api.ApproveParentLink(ctx, id); err != nil {
		p.status.Fail(err)
		return
	}

	p.mu.Lock()
	kept := p.items[:0]
	for _, link := range p.items {
		if link.ID != id {
			kept = append(kept, link)
		}
	}
	p.items = kept
	p.mu.Unlock()
	p.status.Set("Parent link approved.")
}

func (p *Approvals) Items() []api.ParentLink {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.ParentLink, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Approvals) setItems(items []api.ParentLink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}
