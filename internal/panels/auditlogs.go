package panels

import (
	"context"
	"sync"

	"jnv/console/internal/api"
)

// AuditLogs is read-only; the backend caps the page size and nothing
// is paginated beyond it.
type AuditLogs struct {
	api    *api.Client
	status *StatusLine

	gate  loadGate
	mu    sync.Mutex
	items []api.AuditLog
}

func NewAuditLogs(client *api.Client, status *StatusLine) *AuditLogs {
	return &AuditLogs{api: client, status: status}
}

func (p *AuditLogs) Load(ctx context.Context) {
	ticket := p.gate.begin()
	p.status.Set("Loading audit logs...")

	items, err := p.api.ListAuditLogs(ctx)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Audit logs loaded.")
}

func (p *AuditLogs) Items() []api.AuditLog {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.AuditLog, len(p.items))
	copy(out, p.items)
	return out
}

func (p *AuditLogs) setItems(items []api.AuditLog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}
