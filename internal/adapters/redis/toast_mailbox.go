// Package redis implements the toast mailbox and event list cache on Redis via rueidis.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"sportevents/internal/domain"
)

const toastKeyPrefix = "toast:"

type toastMailbox struct {
	client rueidis.Client
	ttl    time.Duration
}

// NewToastMailbox returns a domain.ToastMailbox storing one JSON toast per key with an expiry.
func NewToastMailbox(client rueidis.Client, ttl time.Duration) domain.ToastMailbox {
	return &toastMailbox{client: client, ttl: ttl}
}

func toastKey(key string) string {
	return toastKeyPrefix + key
}

func (m *toastMailbox) Put(ctx context.Context, key string, toast domain.Toast) error {
	b, err := json.Marshal(domain.NewToast(toast.Type, toast.Message))
	if err != nil {
		return fmt.Errorf("encode toast: %w", err)
	}
	cmd := m.client.B().Set().Key(toastKey(key)).Value(string(b)).ExSeconds(ttlSeconds(m.ttl)).Build()
	return m.client.Do(ctx, cmd).Error()
}

// Take uses GETDEL so concurrent readers cannot both receive the toast.
func (m *toastMailbox) Take(ctx context.Context, key string) (*domain.Toast, error) {
	raw, err := m.client.Do(ctx, m.client.B().Getdel().Key(toastKey(key)).Build()).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var t domain.Toast
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		// An unreadable toast is dropped rather than shown.
		return nil, nil
	}
	return &t, nil
}

func (m *toastMailbox) Clear(ctx context.Context, key string) error {
	return m.client.Do(ctx, m.client.B().Del().Key(toastKey(key)).Build()).Error()
}

func ttlSeconds(d time.Duration) int64 {
	s := int64(d / time.Second)
	if s < 1 {
		return 1
	}
	return s
}
