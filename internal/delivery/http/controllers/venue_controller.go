package controllers

import (
	"log/slog"
	"net/http"

	"sportevents/internal/delivery/http/helpers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
)

// CreateVenueRequest is the request body for POST /venues.
type CreateVenueRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// ListVenuesResponse is the data payload for GET /venues (200).
type ListVenuesResponse struct {
	Items      []*domain.Venue        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListVenuesSuccessResponse is the success response envelope for GET /venues (200).
type ListVenuesSuccessResponse struct {
	Data  ListVenuesResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// VenuesSuccessResponse is the success response envelope for GET /venues/search (200).
type VenuesSuccessResponse struct {
	Data  []*domain.Venue   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VenueSuccessResponse is the success response envelope for POST /venues (201).
type VenueSuccessResponse struct {
	Data  *domain.Venue     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{Logger: logger, Service: svc}
}

// ListVenues godoc
// @Summary List venues
// @Description Returns venues ordered by name. Use page and page_size query params.
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListVenuesSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	venues, total, err := c.Service.ListVenues(r.Context(), middleware.IdentityFromContext(r.Context()), params)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListVenuesResponse{Items: venues, Pagination: meta})
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue body controllers.CreateVenueRequest true "Venue"
// @Success 201 {object} controllers.VenueSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [post]
func (c *VenueController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req CreateVenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.CreateVenue(r.Context(), middleware.IdentityFromContext(r.Context()),
		domain.VenueInput{Name: req.Name, Address: req.Address})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Description Returns up to 10 venues whose name contains q. An invalid q yields an empty list.
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Success 200 {object} controllers.VenuesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/search [get]
func (c *VenueController) SearchVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.SearchVenues(r.Context(), middleware.IdentityFromContext(r.Context()), r.URL.Query().Get("q"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venues)
}
