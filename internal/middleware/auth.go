package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sponsorship/internal/domain"
)

// HeaderAPIKey carries the sponsor's bearer key on authenticated requests.
const HeaderAPIKey = "X-API-Key"

// SponsorLookup resolves a bearer key to the sponsor holding it.
type SponsorLookup interface {
	GetByAPIKey(ctx context.Context, key string) (*domain.Sponsor, error)
}

// AuthSponsor is the caller identity attached to the request context once
// the key resolves.
type AuthSponsor struct {
	ID    string
	Email string
}

type sponsorContextKey struct{}

var sponsorKey = sponsorContextKey{}

// APIKeyAuth rejects requests whose key is absent or unknown. Store errors
// are reported as such, not as a credential failure.
func APIKeyAuth(sponsors SponsorLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
			if key == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing api key")
				return
			}

			sponsor, err := sponsors.GetByAPIKey(r.Context(), key)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					writeError(w, http.StatusUnauthorized, "unauthorized", "invalid api key")
					return
				}
				writeError(w, http.StatusInternalServerError, "internal", "could not verify api key")
				return
			}

			ctx := ContextWithSponsor(r.Context(), AuthSponsor{ID: sponsor.ID, Email: sponsor.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SponsorFromContext returns the authenticated sponsor, if any.
func SponsorFromContext(ctx context.Context) (AuthSponsor, bool) {
	s, ok := ctx.Value(sponsorKey).(AuthSponsor)
	return s, ok
}

// ContextWithSponsor attaches a caller identity to the context.
func ContextWithSponsor(ctx context.Context, sponsor AuthSponsor) context.Context {
	return context.WithValue(ctx, sponsorKey, sponsor)
}

// writeError emits the same error envelope the handlers use, so callers see
// one shape regardless of which layer rejected them.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
