package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"sportevents/internal/domain"
)

type listEntry struct {
	events    []*domain.Event
	expiresAt time.Time
}

// EventListCache keeps event lists per owner and filter for a bounded time.
// Each owner has a version bumped by Invalidate; a Put carrying an older version is dropped.
type EventListCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	versions map[string]int64
	byOwner  map[string]map[string]listEntry
}

// NewEventListCache returns a cache whose entries expire after ttl.
func NewEventListCache(ttl time.Duration) *EventListCache {
	return &EventListCache{
		ttl:      ttl,
		now:      time.Now,
		versions: make(map[string]int64),
		byOwner:  make(map[string]map[string]listEntry),
	}
}

func filterKey(f domain.EventFilter) string {
	return strings.ToLower(f.Search) + "\x00" + f.SportType
}

func (c *EventListCache) Get(_ context.Context, filter domain.EventFilter) ([]*domain.Event, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	version := c.versions[filter.OwnerID]
	e, ok := c.byOwner[filter.OwnerID][filterKey(filter)]
	if !ok || c.now().After(e.expiresAt) {
		return nil, version, false, nil
	}
	return e.events, version, true, nil
}

func (c *EventListCache) Put(_ context.Context, filter domain.EventFilter, version int64, events []*domain.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.versions[filter.OwnerID] {
		return nil
	}
	lists, ok := c.byOwner[filter.OwnerID]
	if !ok {
		lists = make(map[string]listEntry)
		c.byOwner[filter.OwnerID] = lists
	}
	lists[filterKey(filter)] = listEntry{events: events, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *EventListCache) Invalidate(_ context.Context, ownerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[ownerID]++
	delete(c.byOwner, ownerID)
	return nil
}
