package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"sportevents/internal/domain"

	"github.com/stretchr/testify/mock"
)

const testTimeout = 5 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	nextID    int
	createErr error
	listErr   error
	updateErr error
	lists     int
	// afterList runs once the rows of a List call are read, before they are returned.
	afterList func()
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.SportType != "" && e.SportType != filter.SportType {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	if hook := f.afterList; hook != nil {
		f.afterList = nil
		hook()
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeVenueRepo is an in-memory VenueRepository. Creating a venue whose name is in failOn returns that error.
type fakeVenueRepo struct {
	byID   map[string]*domain.Venue
	nextID int
	failOn map[string]error
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{byID: make(map[string]*domain.Venue), nextID: 1, failOn: make(map[string]error)}
}

func (f *fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	if err := f.failOn[v.Name]; err != nil {
		return err
	}
	v.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	f.nextID++
	cp := *v
	f.byID[v.ID] = &cp
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeVenueRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Venue, int, error) {
	var all []*domain.Venue
	for _, v := range f.byID {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	start := min(params.Offset(), len(all))
	end := min(start+params.PageSize, len(all))
	return all[start:end], len(all), nil
}

func (f *fakeVenueRepo) Search(ctx context.Context, query string, limit int) ([]*domain.Venue, error) {
	var out []*domain.Venue
	for _, v := range f.byID {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(query)) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeEventVenueRepo keeps links per event and resolves venues from a fakeVenueRepo.
type fakeEventVenueRepo struct {
	venues    *fakeVenueRepo
	links     map[string][]string
	linkErr   map[string]error
	unlinkErr error
}

func newFakeEventVenueRepo(venues *fakeVenueRepo) *fakeEventVenueRepo {
	return &fakeEventVenueRepo{venues: venues, links: make(map[string][]string), linkErr: make(map[string]error)}
}

func (f *fakeEventVenueRepo) Link(ctx context.Context, eventID, venueID string) error {
	if err := f.linkErr[venueID]; err != nil {
		return err
	}
	for _, id := range f.links[eventID] {
		if id == venueID {
			return nil
		}
	}
	f.links[eventID] = append(f.links[eventID], venueID)
	return nil
}

func (f *fakeEventVenueRepo) UnlinkAll(ctx context.Context, eventID string) error {
	if f.unlinkErr != nil {
		return f.unlinkErr
	}
	delete(f.links, eventID)
	return nil
}

func (f *fakeEventVenueRepo) ListVenuesByEventIDs(ctx context.Context, eventIDs []string) (map[string][]*domain.Venue, error) {
	out := make(map[string][]*domain.Venue)
	for _, eventID := range eventIDs {
		for _, venueID := range f.links[eventID] {
			if v, ok := f.venues.byID[venueID]; ok {
				out[eventID] = append(out[eventID], v)
			}
		}
		sort.Slice(out[eventID], func(i, j int) bool { return out[eventID][i].Name < out[eventID][j].Name })
	}
	return out, nil
}

// spyCache is a versioned EventListCache that records invalidations.
type spyCache struct {
	lists         map[domain.EventFilter][]*domain.Event
	versions      map[string]int64
	invalidations []string
}

func newSpyCache() *spyCache {
	return &spyCache{
		lists:    make(map[domain.EventFilter][]*domain.Event),
		versions: make(map[string]int64),
	}
}

func (c *spyCache) Get(ctx context.Context, f domain.EventFilter) ([]*domain.Event, int64, bool, error) {
	events, ok := c.lists[f]
	return events, c.versions[f.OwnerID], ok, nil
}

func (c *spyCache) Put(ctx context.Context, f domain.EventFilter, version int64, events []*domain.Event) error {
	if version == c.versions[f.OwnerID] {
		c.lists[f] = events
	}
	return nil
}

func (c *spyCache) Invalidate(ctx context.Context, ownerID string) error {
	c.invalidations = append(c.invalidations, ownerID)
	c.versions[ownerID]++
	for f := range c.lists {
		if f.OwnerID == ownerID {
			delete(c.lists, f)
		}
	}
	return nil
}

// MockVenueRepository is a testify mock of domain.VenueRepository.
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Venue, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Venue), args.Int(1), args.Error(2)
}

func (m *MockVenueRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Venue, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

// fakeEmailService records welcome messages.
type fakeEmailService struct {
	sent []domain.WelcomeEmail
	err  error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data domain.WelcomeEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
