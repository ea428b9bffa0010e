package postgres

import (
	"context"
	"database/sql"

	"sportevents/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

// NewVenueRepository returns a domain.VenueRepository implemented with Postgres.
func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	v := &domain.Venue{}
	var addrNull sql.NullString
	if err := row.Scan(&v.ID, &v.Name, &addrNull); err != nil {
		return nil, err
	}
	if addrNull.Valid {
		v.Address = &addrNull.String
	}
	return v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO venues (name, address) VALUES ($1, $2) RETURNING id`,
		v.Name, v.Address,
	).Scan(&v.ID)
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	v, err := scanVenue(r.DB.QueryRowContext(ctx, `SELECT id, name, address FROM venues WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Venue, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, address FROM venues ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2`,
		params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	venues, err := collectVenues(rows)
	if err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

func (r *venueRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Venue, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, address FROM venues WHERE name ILIKE $1 ORDER BY name ASC LIMIT $2`,
		"%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVenues(rows)
}

func collectVenues(rows *sql.Rows) ([]*domain.Venue, error) {
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return venues, nil
}
