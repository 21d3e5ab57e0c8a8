package panels

import (
	"fmt"
	"sync"
)

// StatusLine is the single shared status text. Every panel action ends
// by writing it; last write wins, which is all the ordering the UI
// promises.
type StatusLine struct {
	mu   sync.Mutex
	text string
}

func (s *StatusLine) Set(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = fmt.Sprintf(format, args...)
}

func (s *StatusLine) Fail(err error) {
	s.Set("Error: %v", err)
}

func (s *StatusLine) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
