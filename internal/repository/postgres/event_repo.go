package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sportevents/internal/domain"
)

const eventColumns = `id, user_id, name, sport_type, date_time, description, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull sql.NullString
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Name, &e.SportType, &e.DateTime, &descNull, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (user_id, name, sport_type, date_time, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query, e.OwnerID, e.Name, e.SportType, e.DateTime, e.Description).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns the events matching filter ordered by date_time ascending.
func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var where []string
	var args []any
	n := 1
	if filter.OwnerID != "" {
		where = append(where, fmt.Sprintf("user_id = $%d", n))
		args = append(args, filter.OwnerID)
		n++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", n))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n++
	}
	if filter.SportType != "" {
		where = append(where, fmt.Sprintf("sport_type = $%d", n))
		args = append(args, filter.SportType)
		n++
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date_time ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update overwrites the mutable fields of the event and refreshes UpdatedAt.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, sport_type = $2, date_time = $3, description = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query, e.Name, e.SportType, e.DateTime, e.Description, e.ID).Scan(&e.UpdatedAt)
	if err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// escapeLike escapes LIKE metacharacters so the value matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
