package panels

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"jnv/console/internal/api"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type fixedToken string

func (t fixedToken) Token() string { return string(t) }

// stubBackend wraps an httptest server and counts requests per
// "METHOD path" so tests can assert which calls were (not) made.
type stubBackend struct {
	srv *httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func newBackend(t *testing.T, handler http.HandlerFunc) *stubBackend {
	t.Helper()
	b := &stubBackend{calls: map[string]int{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *stubBackend) client() *api.Client {
	return api.New(b.srv.URL, fixedToken("test-token"))
}

func (b *stubBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *stubBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}
