package controllers

import (
	"log/slog"
	"net/http"

	"sportevents/internal/delivery/http/helpers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// Each venue either references an existing venue by id or names a new one.
type EventRequest = domain.EventInput

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventMutationResponse is the response envelope for a completed create or update.
// navigate is the view the client should move to.
type EventMutationResponse struct {
	Data     *domain.EventMutation `json:"data"`
	Error    *helpers.APIError     `json:"error"`
	Navigate string                `json:"navigate"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Actions domain.DashboardUseCase
}

func NewEventController(logger *slog.Logger, svc domain.EventService, actions domain.DashboardUseCase) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Actions: actions,
	}
}

// ListEvents godoc
// @Summary List my events
// @Description Returns the caller's events ordered by date and time, each with its venues. An invalid search or an unknown sport is ignored, not rejected.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring of the event name"
// @Param sport query string false "Sport type, or all"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := c.Service.ListEvents(r.Context(), middleware.IdentityFromContext(r.Context()), q.Get("search"), q.Get("sport"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns one of the caller's events with its venues.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), middleware.IdentityFromContext(r.Context()), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the caller and links its venues. Venues without an id are created first. A venue that cannot be saved is skipped and reported in data.venues; the event is kept.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body controllers.EventRequest true "Event form"
// @Success 201 {object} controllers.EventMutationResponse "navigate: /dashboard"
// @Success 303 "Redirect to /dashboard for HTML clients"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Actions.CreateEvent(r.Context(), middleware.IdentityFromContext(r.Context()), req)
	helpers.WriteResult(w, r, c.Logger, http.StatusCreated, res)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites the event fields and replaces its venue links. Only the owner can update.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body controllers.EventRequest true "Event form"
// @Success 200 {object} controllers.EventMutationResponse "navigate: /dashboard"
// @Success 303 "Redirect to /dashboard for HTML clients"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner or missing)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := c.Actions.UpdateEvent(r.Context(), middleware.IdentityFromContext(r.Context()), r.PathValue("eventID"), req)
	helpers.WriteResult(w, r, c.Logger, http.StatusOK, res)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and its venue links. Venues are kept. Only the owner can delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "navigate: /dashboard"
// @Success 303 "Redirect to /dashboard for HTML clients"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner or missing)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	res := c.Actions.DeleteEvent(r.Context(), middleware.IdentityFromContext(r.Context()), r.PathValue("eventID"))
	helpers.WriteResult(w, r, c.Logger, http.StatusOK, res)
}
