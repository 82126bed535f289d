package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sponsorship/internal/domain"
)

type childCreateRequest struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Country  string  `json:"country"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

type childDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Country     string    `json:"country"`
	Bio         *string   `json:"bio"`
	PhotoURL    *string   `json:"photo_url"`
	Sponsored   bool      `json:"sponsored"`
	SponsoredBy *string   `json:"sponsored_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func childToDTO(c domain.Child) childDTO {
	return childDTO{
		ID:          c.ID,
		Name:        c.Name,
		Age:         c.Age,
		Country:     c.Country,
		Bio:         c.Bio,
		PhotoURL:    c.PhotoURL,
		Sponsored:   c.Sponsored,
		SponsoredBy: c.SponsoredBy,
		CreatedAt:   c.CreatedAt,
	}
}

// ChildrenCreate adds a catalog entry. Any identified caller may create one;
// no ownership is assigned until a claim.
func (a *App) ChildrenCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentSponsor(r); !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	var req childCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Country = strings.TrimSpace(req.Country)
	if req.Name == "" || req.Country == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name and country are required")
		return
	}
	if !domain.ValidChildAge(req.Age) {
		msg := fmt.Sprintf("age must be between %d and %d", domain.MinChildAge, domain.MaxChildAge)
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	child, err := a.Children.Create(r.Context(), &domain.Child{
		Name:     req.Name,
		Age:      req.Age,
		Country:  req.Country,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("create child failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create child")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"id": child.ID})
}

// ChildrenList is the public catalog. Both filters are optional and match
// exactly; an unparseable sponsored flag is a client error.
func (a *App) ChildrenList(w http.ResponseWriter, r *http.Request) {
	filter := domain.ChildFilter{
		Country: strings.TrimSpace(r.URL.Query().Get("country")),
	}

	if raw := r.URL.Query().Get("sponsored"); raw != "" {
		sponsored, err := strconv.ParseBool(raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "sponsored must be true or false")
			return
		}
		filter.Sponsored = &sponsored
	}

	children, err := a.Children.List(r.Context(), filter)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list children failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load children")
		return
	}

	items := make([]childDTO, 0, len(children))
	for _, c := range children {
		items = append(items, childToDTO(c))
	}
	a.json(w, http.StatusOK, items)
}
