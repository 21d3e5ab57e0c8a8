package session

import (
	"errors"
	"strings"
	"sync"
)

// Static is the stub session: the operator pastes a token issued out
// of band. It understands the backend's dev token format
// (dev:<phone>:<role>) and uses the phone as the identity label.
type Static struct {
	mu    sync.Mutex
	token string
	label string
}

func NewStatic(token string) *Static {
	s := &Static{}
	if strings.TrimSpace(token) != "" {
		_ = s.SetToken(token)
	}
	return s
}

func (s *Static) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}

	label := "Authenticated"
	if strings.HasPrefix(token, "dev:") {
		parts := strings.Split(token, ":")
		if len(parts) >= 2 && parts[1] != "" {
			label = parts[1]
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.label = label
	return nil
}

func (s *Static) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Static) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Static) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.label = ""
}
