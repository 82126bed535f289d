package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sponsorship/internal/domain"
)

type updateCreateRequest struct {
	ChildID  string  `json:"child_id"`
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	PhotoURL *string `json:"photo_url"`
}

type updateDTO struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	PhotoURL  *string   `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatesCreate posts a progress note on a child the caller sponsors.
func (a *App) UpdatesCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	var req updateCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.ChildID == "" || req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "child_id and title are required")
		return
	}
	if _, err := uuid.Parse(req.ChildID); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid child id")
		return
	}

	if _, ok := a.ownedChild(w, r, req.ChildID, caller.ID); !ok {
		return
	}

	update, err := a.Updates.Create(r.Context(), &domain.ChildUpdate{
		ChildID:  req.ChildID,
		Title:    req.Title,
		Content:  req.Content,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("create update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to post update")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"id": update.ID})
}

// UpdatesListByChild returns a child's updates to its owning sponsor only.
func (a *App) UpdatesListByChild(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	childID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(childID); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid child id")
		return
	}

	if _, ok := a.ownedChild(w, r, childID, caller.ID); !ok {
		return
	}

	updates, err := a.Updates.ListByChild(r.Context(), childID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list updates failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load updates")
		return
	}

	items := make([]updateDTO, 0, len(updates))
	for _, u := range updates {
		items = append(items, updateDTO{
			ID:        u.ID,
			ChildID:   u.ChildID,
			Title:     u.Title,
			Content:   u.Content,
			PhotoURL:  u.PhotoURL,
			CreatedAt: u.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, items)
}
