package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. The zero value is ready to use.
type Memory struct {
	mu      sync.Mutex
	token   string
	present bool
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements [Store].
func (m *Memory) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return "", ErrNotFound
	}
	return m.token, nil
}

// Save implements [Store].
func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.present = true
	return nil
}

// Clear implements [Store].
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.present = false
	return nil
}
