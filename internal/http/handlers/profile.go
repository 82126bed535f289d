package handlers

import (
	"errors"
	"net/http"
	"time"

	"sponsorship/internal/domain"
)

type profileDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   *string   `json:"country"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type profileStatsDTO struct {
	TotalDonated float64 `json:"total_donated"`
	Children     int     `json:"children"`
}

type meResponse struct {
	Profile  profileDTO      `json:"profile"`
	Children []childDTO      `json:"children"`
	Stats    profileStatsDTO `json:"stats"`
}

// Me aggregates the caller's profile, owned children and donation totals.
// A key that resolves to a missing sponsor row is a data-integrity edge and
// reports NotFound rather than an empty profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	sponsor, err := a.Sponsors.GetByID(r.Context(), caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	children, err := a.Children.ListBySponsor(r.Context(), caller.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list sponsored children failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	donations, err := a.Donations.ListBySponsor(r.Context(), caller.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	var total float64
	for _, d := range donations {
		total += d.Amount
	}

	items := make([]childDTO, 0, len(children))
	for _, c := range children {
		items = append(items, childToDTO(c))
	}

	a.json(w, http.StatusOK, meResponse{
		Profile: profileDTO{
			ID:        sponsor.ID,
			Name:      sponsor.Name,
			Email:     sponsor.Email,
			Country:   sponsor.Country,
			Bio:       sponsor.Bio,
			AvatarURL: sponsor.AvatarURL,
			IsActive:  sponsor.IsActive,
			CreatedAt: sponsor.CreatedAt,
		},
		Children: items,
		Stats: profileStatsDTO{
			TotalDonated: total,
			Children:     len(children),
		},
	})
}
