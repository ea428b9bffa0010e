package domain

import (
	"context"
	"time"
)

// SportTypes is the fixed allow-list of sport types accepted as a list filter.
var SportTypes = []string{
	"Soccer", "Basketball", "Tennis", "Baseball", "Football",
	"Volleyball", "Hockey", "Swimming", "Track & Field", "Other",
}

// Event represents a scheduled sports event owned by the user who created it.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"user_id"`
	Name        string    `json:"name"`
	SportType   string    `json:"sport_type"`
	DateTime    time.Time `json:"date_time"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Venues      []*Venue  `json:"venues"`
}

// NewEvent returns an Event owned by ownerID with the fields of the validated draft.
// ID and timestamps are set by the repository on create.
func NewEvent(ownerID string, draft *EventDraft) *Event {
	return &Event{
		OwnerID:     ownerID,
		Name:        draft.Name,
		SportType:   draft.SportType,
		DateTime:    draft.DateTime,
		Description: draft.Description,
	}
}

// EventFilter narrows a list query. Empty fields are not applied.
type EventFilter struct {
	OwnerID   string
	Search    string
	SportType string
}

// NewEventFilter builds a filter for ownerID, dropping search and sport values that fail validation.
// Invalid values are ignored rather than rejected.
func NewEventFilter(ownerID, search, sport string) EventFilter {
	f := EventFilter{OwnerID: ownerID}
	if q, ok := ValidateSearchQuery(search); ok {
		f.Search = q
	}
	if s, ok := NormalizeSportFilter(sport); ok {
		f.SportType = s
	}
	return f
}

// VenueOutcome records what happened to one requested venue while linking it to an event.
type VenueOutcome struct {
	Position int    `json:"position"`
	VenueID  string `json:"venue_id,omitempty"`
	Name     string `json:"name"`
	Created  bool   `json:"created"`
	Linked   bool   `json:"linked"`
	Error    string `json:"error,omitempty"`
}

// EventMutation is the result of a create or update: the event id and per-venue outcomes.
type EventMutation struct {
	EventID string         `json:"event_id"`
	Venues  []VenueOutcome `json:"venues"`
}

// FailedVenues returns the outcomes of venues that could not be linked.
func (m *EventMutation) FailedVenues() []VenueOutcome {
	var out []VenueOutcome
	for _, v := range m.Venues {
		if !v.Linked {
			out = append(out, v)
		}
	}
	return out
}

// Partial reports whether at least one requested venue was not linked.
func (m *EventMutation) Partial() bool {
	return len(m.FailedVenues()) > 0
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventListCache caches event lists per owner. Invalidate drops every list of the owner.
// Get reports the owner's cache version even on a miss; Put stores under that version only, so a
// list read before an Invalidate can never be served after it.
type EventListCache interface {
	Get(ctx context.Context, filter EventFilter) (events []*Event, version int64, hit bool, err error)
	Put(ctx context.Context, filter EventFilter, version int64, events []*Event) error
	Invalidate(ctx context.Context, ownerID string) error
}

// EventService defines the business logic for events and their venue links.
type EventService interface {
	ListEvents(ctx context.Context, caller *Identity, search, sport string) ([]*Event, error)
	GetEvent(ctx context.Context, caller *Identity, eventID string) (*Event, error)
	CreateEvent(ctx context.Context, caller *Identity, draft *EventDraft) (*EventMutation, error)
	UpdateEvent(ctx context.Context, caller *Identity, eventID string, draft *EventDraft) (*EventMutation, error)
	DeleteEvent(ctx context.Context, caller *Identity, eventID string) error
}
