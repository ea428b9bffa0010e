package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"sportevents/internal/domain"
)

// ErrorStatus maps a domain error to an HTTP status, an error code and the client-safe message
// from domain.PublicMessage.
func ErrorStatus(err error) (status int, code, message string) {
	message = domain.PublicMessage(err)
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest, ErrCodeBadRequest, message
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrCodeUnauthorized, message
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrCodeForbidden, message
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, message
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, ErrCodeConflict, message
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, message
	}
}

// WriteDomainError writes err as a JSON error response. Server errors are logged with the request path and method.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code, message := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"request_id", RequestID(r.Context()), "path", r.URL.Path, "method", r.Method, "err", err)
	}
	WriteJSONError(w, status, code, message)
}

// WriteResult writes a dashboard action result: navigate, error or success with successStatus.
func WriteResult[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, successStatus int, res domain.Result[T]) {
	switch res.Kind {
	case domain.ResultNavigate:
		WriteNavigate(w, r, successStatus, res.Location, res.Data)
	case domain.ResultError:
		WriteDomainError(w, r, logger, res.Err)
	default:
		WriteJSONSuccess(w, successStatus, res.Data)
	}
}
