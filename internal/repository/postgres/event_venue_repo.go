package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"sportevents/internal/domain"
)

type eventVenueRepository struct {
	DB *sql.DB
}

// NewEventVenueRepository returns a domain.EventVenueRepository implemented with Postgres.
func NewEventVenueRepository(db *sql.DB) domain.EventVenueRepository {
	return &eventVenueRepository{DB: db}
}

func (r *eventVenueRepository) Link(ctx context.Context, eventID, venueID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO events_venues (event_id, venue_id) VALUES ($1, $2) ON CONFLICT (event_id, venue_id) DO NOTHING`,
		eventID, venueID)
	return err
}

func (r *eventVenueRepository) UnlinkAll(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_venues WHERE event_id = $1`, eventID)
	return err
}

func (r *eventVenueRepository) ListVenuesByEventIDs(ctx context.Context, eventIDs []string) (map[string][]*domain.Venue, error) {
	out := make(map[string][]*domain.Venue, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT ev.event_id, v.id, v.name, v.address FROM events_venues ev
		 JOIN venues v ON v.id = ev.venue_id
		 WHERE ev.event_id = ANY($1)
		 ORDER BY v.name, v.id`, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var eventID string
		v := &domain.Venue{}
		var addrNull sql.NullString
		if err := rows.Scan(&eventID, &v.ID, &v.Name, &addrNull); err != nil {
			return nil, err
		}
		if addrNull.Valid {
			v.Address = &addrNull.String
		}
		out[eventID] = append(out[eventID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
