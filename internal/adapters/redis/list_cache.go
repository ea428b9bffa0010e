package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/rueidis"

	"sportevents/internal/domain"
)

// eventListCache namespaces entries by a per-owner generation counter.
// Invalidate bumps the generation; entries of older generations are unreachable and expire on their own.
type eventListCache struct {
	client rueidis.Client
	ttl    time.Duration
}

// NewEventListCache returns a domain.EventListCache backed by Redis.
func NewEventListCache(client rueidis.Client, ttl time.Duration) domain.EventListCache {
	return &eventListCache{client: client, ttl: ttl}
}

func generationKey(ownerID string) string {
	return "events:list:gen:" + ownerID
}

func listKey(f domain.EventFilter, gen int64) string {
	sum := sha256.Sum256([]byte(strings.ToLower(f.Search) + "\x00" + f.SportType))
	return fmt.Sprintf("events:list:%s:%d:%s", f.OwnerID, gen, hex.EncodeToString(sum[:8]))
}

func (c *eventListCache) generation(ctx context.Context, ownerID string) (int64, error) {
	gen, err := c.client.Do(ctx, c.client.B().Get().Key(generationKey(ownerID)).Build()).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

func (c *eventListCache) Get(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int64, bool, error) {
	gen, err := c.generation(ctx, filter.OwnerID)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := c.client.Do(ctx, c.client.B().Get().Key(listKey(filter, gen)).Build()).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, gen, false, nil
		}
		return nil, gen, false, err
	}
	var events []*domain.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, gen, false, nil
	}
	return events, gen, true, nil
}

// Put writes under the generation seen by Get. After an Invalidate that key is never read again.
func (c *eventListCache) Put(ctx context.Context, filter domain.EventFilter, gen int64, events []*domain.Event) error {
	b, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode event list: %w", err)
	}
	cmd := c.client.B().Set().Key(listKey(filter, gen)).Value(string(b)).ExSeconds(ttlSeconds(c.ttl)).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *eventListCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Do(ctx, c.client.B().Incr().Key(generationKey(ownerID)).Build()).Error()
}
