package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
	"sponsorship/internal/middleware"
)

// StoreProbe answers the deep health check.
type StoreProbe interface {
	Tables(ctx context.Context) ([]string, error)
}

// App bundles the dependencies every handler needs.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Sponsors  domain.SponsorRepository
	Children  domain.ChildRepository
	Donations domain.DonationRepository
	Updates   domain.UpdateRepository
	Probe     StoreProbe
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// currentSponsor returns the identity the auth middleware resolved. Handlers
// on authenticated routes treat an absent identity as a wiring bug and reject
// the request rather than panic.
func (a *App) currentSponsor(r *http.Request) (middleware.AuthSponsor, bool) {
	return middleware.SponsorFromContext(r.Context())
}
