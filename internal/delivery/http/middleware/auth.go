package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "sportevents/internal/delivery/http/helpers"
	"sportevents/internal/domain"
)

// SessionCookieName is the cookie holding the session token for browser clients.
const SessionCookieName = "session"

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated caller. Used by auth middleware.
func SetIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated caller, or nil when the request is anonymous.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey).(*domain.Identity)
	return id
}

// sessionToken reads the token from the Authorization header, falling back to the session cookie.
func sessionToken(r *http.Request) (string, string) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return "", "invalid authorization format"
		}
		token := strings.TrimSpace(auth[len(prefix):])
		if token == "" {
			return "", "missing token"
		}
		return token, ""
	}
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, ""
	}
	return "", "missing authorization header"
}

// RequireAuth returns a wrapper that validates the session token and puts the caller's identity in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := sessionToken(r)
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			id, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetIdentity(r.Context(), id)))
		}
	}
}
