package domain

import "context"

// Venue is a reusable named location that can be linked to many events.
// swagger:model Venue
type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, params PaginationParams) ([]*Venue, int, error)
	Search(ctx context.Context, query string, limit int) ([]*Venue, error)
}

// EventVenueRepository stores the events_venues join rows.
// Removing a link never removes the venue itself.
type EventVenueRepository interface {
	// Link is idempotent: linking an already linked pair is not an error.
	Link(ctx context.Context, eventID, venueID string) error
	UnlinkAll(ctx context.Context, eventID string) error
	// ListVenuesByEventIDs returns the linked venues of each event, ordered by venue name.
	ListVenuesByEventIDs(ctx context.Context, eventIDs []string) (map[string][]*Venue, error)
}

// VenueService defines the business logic for standalone venue management.
type VenueService interface {
	ListVenues(ctx context.Context, caller *Identity, params PaginationParams) ([]*Venue, int, error)
	CreateVenue(ctx context.Context, caller *Identity, input VenueInput) (*Venue, error)
	SearchVenues(ctx context.Context, caller *Identity, query string) ([]*Venue, error)
}
