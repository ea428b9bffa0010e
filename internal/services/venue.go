package services

import (
	"context"
	"fmt"
	"time"

	"sportevents/internal/domain"
)

const venueSearchLimit = 10

type venueService struct {
	venueRepo      domain.VenueRepository
	contextTimeout time.Duration
}

// NewVenueService returns a VenueService backed by venueRepo.
func NewVenueService(venueRepo domain.VenueRepository, timeout time.Duration) domain.VenueService {
	return &venueService{venueRepo: venueRepo, contextTimeout: timeout}
}

func (s *venueService) ListVenues(ctx context.Context, caller *domain.Identity, params domain.PaginationParams) ([]*domain.Venue, int, error) {
	if caller == nil {
		return nil, 0, domain.ErrUnauthenticated
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, total, err := s.venueRepo.List(ctx, domain.NewPage(params.Page, params.PageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}
	return venues, total, nil
}

// CreateVenue creates a standalone venue. An id in the input is ignored.
func (s *venueService) CreateVenue(ctx context.Context, caller *domain.Identity, input domain.VenueInput) (*domain.Venue, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	input.ID = nil
	spec, err := input.Parse()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue := &domain.Venue{Name: spec.Name, Address: spec.Address}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

// SearchVenues returns up to venueSearchLimit venues whose name contains query.
// A query that fails search validation yields an empty result.
func (s *venueService) SearchVenues(ctx context.Context, caller *domain.Identity, query string) ([]*domain.Venue, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	q, ok := domain.ValidateSearchQuery(query)
	if !ok {
		return []*domain.Venue{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.Search(ctx, q, venueSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return venues, nil
}
