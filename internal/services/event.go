package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sportevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	venueRepo      domain.VenueRepository
	eventVenueRepo domain.EventVenueRepository
	cache          domain.EventListCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService returns an EventService. cache may be nil to disable list caching.
func NewEventService(eventRepo domain.EventRepository,
	venueRepo domain.VenueRepository,
	eventVenueRepo domain.EventVenueRepository,
	cache domain.EventListCache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		venueRepo:      venueRepo,
		eventVenueRepo: eventVenueRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, caller *domain.Identity, search, sport string) ([]*domain.Event, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter := domain.NewEventFilter(caller.UserID, search, sport)
	cacheable := false
	var version int64
	if s.cache != nil {
		events, v, hit, err := s.cache.Get(ctx, filter)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "event list cache read failed", "owner_id", caller.UserID, "error", err)
		case hit:
			return events, nil
		default:
			cacheable, version = true, v
		}
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if err := s.attachVenues(ctx, events); err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Put(ctx, filter, version, events); err != nil {
			s.logger.WarnContext(ctx, "event list cache write failed", "owner_id", caller.UserID, "error", err)
		}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, caller *domain.Identity, eventID string) (*domain.Event, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Events of other owners are invisible, not forbidden.
	if event.OwnerID != caller.UserID {
		return nil, domain.ErrNotFound
	}
	if err := s.attachVenues(ctx, []*domain.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, caller *domain.Identity, draft *domain.EventDraft) (*domain.EventMutation, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if draft == nil {
		return nil, &domain.ValidationError{Message: "event is required"}
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEvent(caller.UserID, draft)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	mutation := &domain.EventMutation{
		EventID: event.ID,
		Venues:  s.reconcileVenues(ctx, event.ID, draft.Venues),
	}
	s.invalidate(ctx, caller.UserID)
	return mutation, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, caller *domain.Identity, eventID string, draft *domain.EventDraft) (*domain.EventMutation, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if draft == nil {
		return nil, &domain.ValidationError{Message: "event is required"}
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.ownedEvent(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	event.Name = draft.Name
	event.SportType = draft.SportType
	event.DateTime = draft.DateTime
	event.Description = draft.Description
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	defer s.invalidate(ctx, caller.UserID)

	if err := s.eventVenueRepo.UnlinkAll(ctx, event.ID); err != nil {
		return nil, fmt.Errorf("unlink venues: %w", err)
	}
	mutation := &domain.EventMutation{
		EventID: event.ID,
		Venues:  s.reconcileVenues(ctx, event.ID, draft.Venues),
	}
	return mutation, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, caller *domain.Identity, eventID string) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, caller, eventID); err != nil {
		return err
	}
	// events_venues rows go with the event through ON DELETE CASCADE.
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("delete event: %w", err)
	}
	s.invalidate(ctx, caller.UserID)
	return nil
}

// ownedEvent loads the event and checks that caller owns it.
// A missing row and a foreign row both yield ErrForbidden.
func (s *eventService) ownedEvent(ctx context.Context, caller *domain.Identity, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

// reconcileVenues links each requested venue to the event in order, creating venues given without an id.
// A venue that fails to be created or linked is skipped and reported in its outcome; the others proceed.
func (s *eventService) reconcileVenues(ctx context.Context, eventID string, venues []domain.VenueSpec) []domain.VenueOutcome {
	outcomes := make([]domain.VenueOutcome, 0, len(venues))
	for i, spec := range venues {
		outcome := domain.VenueOutcome{Position: i, Name: spec.Name, VenueID: spec.ID}
		if spec.ID == "" {
			venue := &domain.Venue{Name: spec.Name, Address: spec.Address}
			if err := s.venueRepo.Create(ctx, venue); err != nil {
				s.logger.WarnContext(ctx, "venue skipped: create failed",
					"event_id", eventID, "position", i, "name", spec.Name, "error", err)
				outcome.Error = "venue could not be created"
				outcomes = append(outcomes, outcome)
				continue
			}
			outcome.VenueID = venue.ID
			outcome.Created = true
		}
		if err := s.eventVenueRepo.Link(ctx, eventID, outcome.VenueID); err != nil {
			s.logger.WarnContext(ctx, "venue skipped: link failed",
				"event_id", eventID, "venue_id", outcome.VenueID, "position", i, "error", err)
			outcome.Error = "venue could not be linked"
			outcomes = append(outcomes, outcome)
			continue
		}
		outcome.Linked = true
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *eventService) attachVenues(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	byEvent, err := s.eventVenueRepo.ListVenuesByEventIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve venues: %w", err)
	}
	for _, e := range events {
		e.Venues = byEvent[e.ID]
		if e.Venues == nil {
			e.Venues = []*domain.Venue{}
		}
	}
	return nil
}

func (s *eventService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.WarnContext(ctx, "event list cache invalidation failed", "owner_id", ownerID, "error", err)
	}
}
