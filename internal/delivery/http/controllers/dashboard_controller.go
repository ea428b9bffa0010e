package controllers

import (
	"log/slog"
	"net/http"

	"sportevents/internal/delivery/http/helpers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
)

// DashboardSuccessResponse is the success response envelope for GET /dashboard (200).
type DashboardSuccessResponse struct {
	Data  *domain.DashboardView `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type DashboardController struct {
	Logger  *slog.Logger
	Actions domain.DashboardUseCase
}

func NewDashboardController(logger *slog.Logger, actions domain.DashboardUseCase) *DashboardController {
	return &DashboardController{Logger: logger, Actions: actions}
}

// Dashboard godoc
// @Summary Dashboard view
// @Description Returns the caller's filtered events and the pending toast. Reading the dashboard consumes the toast.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring of the event name"
// @Param sport query string false "Sport type, or all"
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := c.Actions.Dashboard(r.Context(), middleware.IdentityFromContext(r.Context()), q.Get("search"), q.Get("sport"))
	if res.OK() && res.Data.Events == nil {
		res.Data.Events = []*domain.Event{}
	}
	helpers.WriteResult(w, r, c.Logger, http.StatusOK, res)
}

// ClearToast godoc
// @Summary Dismiss the pending toast
// @Tags dashboard
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/toast [delete]
func (c *DashboardController) ClearToast(w http.ResponseWriter, r *http.Request) {
	res := c.Actions.ClearToast(r.Context(), middleware.IdentityFromContext(r.Context()))
	if !res.OK() {
		helpers.WriteDomainError(w, r, c.Logger, res.Err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
