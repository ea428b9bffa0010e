package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// Navigate is set when the action finished and the client should move to that location.
// swagger:model APIResponse
type APIResponse struct {
	Data     any       `json:"data"`
	Error    *APIError `json:"error"`
	Navigate string    `json:"navigate,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteNavigate tells the client to move to location after a completed action.
// Browsers (Accept: text/html) get a 303 See Other; API clients get statusCode with
// the data and the location in the navigate field.
func WriteNavigate(w http.ResponseWriter, r *http.Request, statusCode int, location string, data any) {
	if WantsHTML(r) {
		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}
	writeJSON(w, statusCode, APIResponse{Data: data, Navigate: location})
}

// WantsHTML reports whether the request prefers an HTML response.
func WantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
