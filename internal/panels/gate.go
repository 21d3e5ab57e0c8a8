package panels

import "sync"

// loadGate hands out a ticket per load and only honors the latest one,
// so a slow response cannot overwrite the result of a load issued
// after it. In-flight requests are not cancelled; stale results are
// simply discarded on arrival.
type loadGate struct {
	mu      sync.Mutex
	current uint64
}

func (g *loadGate) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current++
	return g.current
}

func (g *loadGate) stillCurrent(ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ticket == g.current
}
