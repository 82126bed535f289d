package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"sponsorship/internal/domain"
)

type sponsorRequest struct {
	ChildID string `json:"child_id"`
}

// SponsorChild claims an unsponsored child for the caller. The claim is
// a single conditional write, so losing a race reports Conflict rather than
// silently reassigning the child.
func (a *App) SponsorChild(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	var req sponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ChildID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "child_id is required")
		return
	}
	if _, err := uuid.Parse(req.ChildID); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid child id")
		return
	}

	if err := a.Children.Claim(r.Context(), req.ChildID, caller.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "child not found")
		case errors.Is(err, domain.ErrAlreadySponsored):
			a.error(w, http.StatusConflict, "conflict", "child already sponsored")
		default:
			a.Logger.Error().Err(err).Msg("claim child failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to sponsor child")
		}
		return
	}

	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
