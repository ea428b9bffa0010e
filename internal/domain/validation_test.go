package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validInput() EventInput {
	return EventInput{
		Name:      "Spring Cup",
		SportType: "Soccer",
		DateTime:  "2025-04-01T10:00",
		Venues:    []VenueInput{{Name: "Field A"}},
	}
}

func TestEventInput_Parse(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *EventInput)
		wantField string
		check     func(t *testing.T, d *EventDraft)
	}{
		{
			name:   "valid datetime-local input",
			mutate: func(in *EventInput) {},
			check: func(t *testing.T, d *EventDraft) {
				assert.Equal(t, "Spring Cup", d.Name)
				assert.Equal(t, "Soccer", d.SportType)
				assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), d.DateTime)
				require.Len(t, d.Venues, 1)
				assert.Equal(t, "", d.Venues[0].ID)
				assert.Equal(t, "Field A", d.Venues[0].Name)
				assert.Nil(t, d.Description)
			},
		},
		{
			name: "rfc3339 with zone is normalized to UTC",
			mutate: func(in *EventInput) {
				in.DateTime = "2025-04-01T12:00:00+02:00"
			},
			check: func(t *testing.T, d *EventDraft) {
				assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), d.DateTime)
			},
		},
		{
			name: "blank description and address become nil",
			mutate: func(in *EventInput) {
				in.Description = strPtr("   ")
				in.Venues[0].Address = strPtr("")
			},
			check: func(t *testing.T, d *EventDraft) {
				assert.Nil(t, d.Description)
				assert.Nil(t, d.Venues[0].Address)
			},
		},
		{
			name: "existing venue id is kept",
			mutate: func(in *EventInput) {
				in.Venues = []VenueInput{{ID: strPtr("6F9619FF-8B86-D011-B42D-00C04FC964FF"), Name: "Arena"}}
			},
			check: func(t *testing.T, d *EventDraft) {
				assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", d.Venues[0].ID)
			},
		},
		{
			name:      "name too short",
			mutate:    func(in *EventInput) { in.Name = " ab " },
			wantField: "name",
		},
		{
			name:      "missing sport type",
			mutate:    func(in *EventInput) { in.SportType = "" },
			wantField: "sport_type",
		},
		{
			name:      "missing date time",
			mutate:    func(in *EventInput) { in.DateTime = "" },
			wantField: "date_time",
		},
		{
			name:      "unparseable date time",
			mutate:    func(in *EventInput) { in.DateTime = "next tuesday" },
			wantField: "date_time",
		},
		{
			name:      "no venues",
			mutate:    func(in *EventInput) { in.Venues = nil },
			wantField: "venues",
		},
		{
			name: "venue without name",
			mutate: func(in *EventInput) {
				in.Venues = append(in.Venues, VenueInput{Name: " "})
			},
			wantField: "venues[1].name",
		},
		{
			name: "venue with malformed id",
			mutate: func(in *EventInput) {
				in.Venues[0].ID = strPtr("not-a-uuid")
			},
			wantField: "venues[0].id",
		},
		{
			name: "first violated rule wins",
			mutate: func(in *EventInput) {
				in.Name = "x"
				in.SportType = ""
				in.Venues = nil
			},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			draft, err := in.Parse()
			if tt.wantField != "" {
				require.Error(t, err)
				require.Nil(t, draft)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, draft)
		})
	}
}

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"cup", "cup", true},
		{"  Spring Cup  ", "Spring Cup", true},
		{"o'neil-park_2.0", "o'neil-park_2.0", true},
		{"", "", false},
		{"   ", "", false},
		{"100%", "", false},
		{"a;drop", "", false},
		{"name,ilike", "", false},
		{strings.Repeat("a", 100), strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ValidateSearchQuery(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSportFilter(t *testing.T) {
	for _, s := range SportTypes {
		got, ok := NormalizeSportFilter(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}
	for _, s := range []string{"", "all", "soccer", "Curling", "Soccer;"} {
		_, ok := NormalizeSportFilter(s)
		assert.False(t, ok, s)
	}
}

func TestNewEventFilter(t *testing.T) {
	f := NewEventFilter("u1", "cup", "Tennis")
	assert.Equal(t, EventFilter{OwnerID: "u1", Search: "cup", SportType: "Tennis"}, f)

	f = NewEventFilter("u1", "100%", "Curling")
	assert.Equal(t, EventFilter{OwnerID: "u1"}, f, "invalid values are dropped, not rejected")
}

func TestEventMutation_Partial(t *testing.T) {
	m := &EventMutation{EventID: "ev-1", Venues: []VenueOutcome{
		{Position: 0, Name: "A", Linked: false, Error: "insert failed"},
		{Position: 1, Name: "B", VenueID: "v-2", Created: true, Linked: true},
	}}
	assert.True(t, m.Partial())
	require.Len(t, m.FailedVenues(), 1)
	assert.Equal(t, "A", m.FailedVenues()[0].Name)

	ok := &EventMutation{EventID: "ev-2", Venues: []VenueOutcome{{Name: "C", Linked: true}}}
	assert.False(t, ok.Partial())
}

func TestNewToast(t *testing.T) {
	short := NewToast(ToastSuccess, "Event created successfully")
	assert.Equal(t, "Event created successfully", short.Message)

	long := NewToast(ToastError, strings.Repeat("é", MaxToastMessageLen))
	assert.LessOrEqual(t, len(long.Message), MaxToastMessageLen)
	assert.True(t, strings.HasPrefix(strings.Repeat("é", MaxToastMessageLen), long.Message))
}

func TestResult(t *testing.T) {
	s := Success(42)
	assert.Equal(t, ResultSuccess, s.Kind)
	assert.True(t, s.OK())

	f := Failure[int](ErrForbidden)
	assert.Equal(t, ResultError, f.Kind)
	assert.False(t, f.OK())
	assert.ErrorIs(t, f.Err, ErrForbidden)

	n := NavigateTo("/dashboard", "x")
	assert.Equal(t, ResultNavigate, n.Kind)
	assert.Equal(t, "/dashboard", n.Location)
	assert.True(t, n.OK(), "navigate is not a failure")
}
