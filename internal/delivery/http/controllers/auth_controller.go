package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "sportevents/internal/delivery/http/helpers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
)

// allowedNextPaths are the only post-login destinations a client may request.
var allowedNextPaths = map[string]struct{}{
	"/dashboard":            {},
	"/dashboard/events/new": {},
}

// SanitizeNext returns next when it is an allowed post-login path, otherwise /dashboard.
func SanitizeNext(next string) string {
	if _, ok := allowedNextPaths[next]; ok {
		return next
	}
	return domain.DashboardLocation
}

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Next     string `json:"next"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload of POST /auth/login. The token is also set as the session cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// LoginSuccessResponse is the response envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data     LoginResponse `json:"data"`
	Error    *h.APIError   `json:"error"`
	Navigate string        `json:"navigate"`
}

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AuthService
	CookieSecure bool
	TokenExpiry  time.Duration
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, cookieSecure bool, tokenExpiry time.Duration) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		CookieSecure: cookieSecure,
		TokenExpiry:  tokenExpiry,
	}
}

func (c *AuthController) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new user with email and password (at least 6 characters). Password is stored hashed. A welcome email is sent when mail is configured.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} h.APIResponse "data contains the created user"
// @Failure 400 {object} h.APIResponse "error.code: bad_request"
// @Failure 409 {object} h.APIResponse "error.code: conflict"
// @Failure 500 {object} h.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Authenticates with email and password, sets the session cookie and returns the token. The client should then move to navigate, which is next when allowed and /dashboard otherwise.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Success 303 "Redirect for HTML clients"
// @Failure 400 {object} h.APIResponse "error.code: bad_request"
// @Failure 401 {object} h.APIResponse "error.code: unauthorized"
// @Failure 500 {object} h.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	http.SetCookie(w, c.sessionCookie(token, int(c.TokenExpiry.Seconds())))
	h.WriteNavigate(w, r, http.StatusOK, SanitizeNext(req.Next), LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Bearer tokens are stateless and simply discarded by the client.
// @Tags auth
// @Produce json
// @Success 200 {object} h.APIResponse "navigate: /"
// @Success 303 "Redirect for HTML clients"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, c.sessionCookie("", -1))
	h.WriteNavigate(w, r, http.StatusOK, "/", nil)
}
