package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"givehope/internal/domain"
	"givehope/internal/infra"
	"givehope/internal/infra/geoip"
	"givehope/internal/mailer"
	"givehope/internal/middleware"
	"givehope/internal/payments"
)

// App is the handler container. Every request-scoped dependency the
// handlers touch goes through here so tests can swap in fakes.
type App struct {
	SQL       infra.SQLExecutor
	Logger    zerolog.Logger
	JWTSecret string
	ClientURL string
	Checkout  payments.CheckoutProvider
	Mailer    mailer.Mailer
	Geo       geoip.CountryResolver
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"msg": msg})
}

// fail writes msg with the status code the domain error maps to.
func (a *App) fail(w http.ResponseWriter, err error, msg string) {
	a.error(w, statusFor(err), msg)
}

// statusFor maps the domain error taxonomy onto API status codes. Anything
// outside the taxonomy is a server error.
func statusFor(err error) int {
	var insufficient *domain.InsufficientFundsError
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCampaignInactive):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// currentUser reconstructs the caller's identity from the token claims.
func (a *App) currentUser(r *http.Request) domain.User {
	return domain.User{
		ID:   middleware.UserIDFromContext(r.Context()),
		Role: domain.UserRole(middleware.RoleFromContext(r.Context())),
	}
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
