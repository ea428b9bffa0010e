// Package memory holds in-process implementations of the mailbox and cache ports,
// used when no Redis address is configured and in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"sportevents/internal/domain"
)

type toastEntry struct {
	toast     domain.Toast
	expiresAt time.Time
}

// ToastMailbox is a single-slot-per-key mailbox with a TTL.
type ToastMailbox struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]toastEntry
}

// NewToastMailbox returns a mailbox whose entries expire after ttl.
func NewToastMailbox(ttl time.Duration) *ToastMailbox {
	return &ToastMailbox{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]toastEntry),
	}
}

func (m *ToastMailbox) Put(_ context.Context, key string, toast domain.Toast) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = toastEntry{toast: domain.NewToast(toast.Type, toast.Message), expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *ToastMailbox) Take(_ context.Context, key string) (*domain.Toast, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	delete(m.entries, key)
	if m.now().After(e.expiresAt) {
		return nil, nil
	}
	t := e.toast
	return &t, nil
}

func (m *ToastMailbox) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
