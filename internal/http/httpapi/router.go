package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sponsorship/internal/http/handlers"
	"sponsorship/internal/middleware"
)

// NewRouter wires the full route table. The country lookup feeds signup's
// country default and may be nil when no GeoIP database is configured.
func NewRouter(app *handlers.App, country middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
	)

	allowedOrigins := []string{"*"}
	rateLimit := 30
	if app.Config != nil {
		allowedOrigins = app.Config.AllowedOrigins
		if app.Config.RateLimitPerMin > 0 {
			rateLimit = app.Config.RateLimitPerMin
		}
	}
	r.Use(middleware.CORS(allowedOrigins))

	// Public surface.
	r.Get("/", app.Root)
	r.Get("/test", app.StoreCheck)
	r.Get("/children", app.ChildrenList)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	// Credential endpoints are rate limited and annotated with the caller's
	// origin country.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rateLimit, time.Minute))
		r.Use(middleware.Country(country))

		r.Post("/auth/signup", app.Signup)
		r.Post("/auth/signin", app.Signin)
	})

	// Everything below requires a resolved API key.
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(app.Sponsors))

		r.Post("/children", app.ChildrenCreate)
		r.Post("/sponsor", app.SponsorChild)
		r.Post("/donations", app.DonationsCreate)
		r.Get("/donations", app.DonationsList)
		r.Post("/updates", app.UpdatesCreate)
		r.Get("/children/{id}/updates", app.UpdatesListByChild)
		r.Get("/me", app.Me)
	})

	return r
}
