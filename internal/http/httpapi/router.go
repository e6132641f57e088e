package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"givehope/internal/domain"
	"givehope/internal/http/handlers"
	"givehope/internal/infra"
	"givehope/internal/middleware"
)

// NewRouter wires every route. Authentication and role checks live here as
// middleware; handlers assume an already-authorized caller.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	auth := middleware.RequireAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(string(domain.UserRoleAdmin))

	r.Get("/healthz", app.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.With(auth, adminOnly).Post("/", app.CampaignsCreate)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Use(auth)
		r.Post("/create-checkout-session", app.DonationsCreateCheckoutSession)
		r.Post("/verify-payment", app.DonationsVerifyPayment)
		r.Get("/my-history", app.DonationsMyHistory)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", app.ExpensesList)
		r.Get("/stats", app.ExpensesStats)
		r.With(auth, adminOnly).Post("/", app.ExpensesCreate)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth, adminOnly)
		r.Get("/stats", app.AdminStats)
		r.Get("/users", app.AdminUsers)
		r.Get("/donations", app.AdminDonations)
	})

	return r
}
