package domain

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minEventNameLen   = 3
	maxSearchQueryLen = 100
)

// searchQueryRegexp limits search input to letters, digits, whitespace, hyphen, underscore, apostrophe and period.
var searchQueryRegexp = regexp.MustCompile(`^[a-zA-Z0-9\s\-_'.]+$`)

// dateTimeLayouts are tried in order. The last two accept HTML datetime-local values.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// VenueInput is one venue entry of an event form: an existing venue by id, or a new one by name.
type VenueInput struct {
	ID      *string `json:"id,omitempty"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

// EventInput is the raw event form as submitted by a client.
type EventInput struct {
	Name        string       `json:"name"`
	SportType   string       `json:"sport_type"`
	DateTime    string       `json:"date_time"`
	Description *string      `json:"description,omitempty"`
	Venues      []VenueInput `json:"venues"`
}

// VenueSpec is a validated venue entry. An empty ID means the venue must be created.
type VenueSpec struct {
	ID      string
	Name    string
	Address *string
}

// EventDraft is a validated event form.
type EventDraft struct {
	Name        string
	SportType   string
	DateTime    time.Time
	Description *string
	Venues      []VenueSpec
}

// Parse validates the input and returns the typed draft, or a *ValidationError for the first violated rule.
func (in EventInput) Parse() (*EventDraft, error) {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < minEventNameLen {
		return nil, invalid("name", "must be at least %d characters", minEventNameLen)
	}
	sport := strings.TrimSpace(in.SportType)
	if sport == "" {
		return nil, invalid("sport_type", "is required")
	}
	if strings.TrimSpace(in.DateTime) == "" {
		return nil, invalid("date_time", "is required")
	}
	dt, ok := ParseDateTime(in.DateTime)
	if !ok {
		return nil, invalid("date_time", "is not a valid date and time")
	}
	if len(in.Venues) == 0 {
		return nil, invalid("venues", "at least one venue is required")
	}
	venues := make([]VenueSpec, 0, len(in.Venues))
	for i, v := range in.Venues {
		spec, err := v.parse()
		if err != nil {
			err.Field = "venues[" + strconv.Itoa(i) + "]." + err.Field
			return nil, err
		}
		venues = append(venues, spec)
	}
	return &EventDraft{
		Name:        name,
		SportType:   sport,
		DateTime:    dt,
		Description: optional(in.Description),
		Venues:      venues,
	}, nil
}

// Parse validates a standalone venue entry.
func (in VenueInput) Parse() (VenueSpec, error) {
	spec, err := in.parse()
	if err != nil {
		return VenueSpec{}, err
	}
	return spec, nil
}

func (in VenueInput) parse() (VenueSpec, *ValidationError) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return VenueSpec{}, invalid("name", "is required")
	}
	var id string
	if in.ID != nil && strings.TrimSpace(*in.ID) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(*in.ID))
		if err != nil {
			return VenueSpec{}, invalid("id", "must be a valid UUID")
		}
		id = parsed.String()
	}
	return VenueSpec{ID: id, Name: name, Address: optional(in.Address)}, nil
}

// ParseDateTime parses an RFC 3339 timestamp or a zone-less local date-time (read as UTC).
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateSearchQuery trims q and reports whether it is usable as a name search.
func ValidateSearchQuery(q string) (string, bool) {
	q = strings.TrimSpace(q)
	if q == "" || len(q) > maxSearchQueryLen {
		return "", false
	}
	if !searchQueryRegexp.MatchString(q) {
		return "", false
	}
	return q, true
}

// NormalizeSportFilter reports whether s is an allowed sport type. "all" means no filter.
func NormalizeSportFilter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return "", false
	}
	if !slices.Contains(SportTypes, s) {
		return "", false
	}
	return s, true
}

// optional maps nil and blank strings to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
