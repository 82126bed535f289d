package handlers

import (
	"errors"
	"net/http"

	"sponsorship/internal/domain"
)

// ownedChild resolves childID and enforces that the caller is its owning
// sponsor. A missing child is NotFound; an existing child owned by someone
// else is Forbidden. On failure the response has already been written.
func (a *App) ownedChild(w http.ResponseWriter, r *http.Request, childID, callerID string) (*domain.Child, bool) {
	child, err := a.Children.GetByID(r.Context(), childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "child not found")
		} else {
			a.Logger.Error().Err(err).Msg("load child failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load child")
		}
		return nil, false
	}

	if !child.OwnedBy(callerID) {
		a.error(w, http.StatusForbidden, "forbidden", "you do not sponsor this child")
		return nil, false
	}

	return child, true
}
