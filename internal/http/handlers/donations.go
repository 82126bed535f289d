package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"

	"sponsorship/internal/domain"
)

type donationCreateRequest struct {
	ChildID  string  `json:"child_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Month    *string `json:"month"`
}

type donationDTO struct {
	ID        string    `json:"id"`
	SponsorID string    `json:"sponsor_id"`
	ChildID   string    `json:"child_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Month     *string   `json:"month"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DonationsCreate records a completed donation against a child the caller
// sponsors. There is no payment processing behind this, only the record.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	var req donationCreateRequest
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
	if req.Amount < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be non-negative")
		return
	}

	code := domain.DefaultCurrency
	if trimmed := strings.TrimSpace(req.Currency); trimmed != "" {
		unit, err := currency.ParseISO(trimmed)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid currency code")
			return
		}
		code = unit.String()
	}

	if _, ok := a.ownedChild(w, r, req.ChildID, caller.ID); !ok {
		return
	}

	donation, err := a.Donations.Create(r.Context(), &domain.Donation{
		SponsorID: caller.ID,
		ChildID:   req.ChildID,
		Amount:    req.Amount,
		Currency:  code,
		Month:     req.Month,
		Status:    domain.DonationStatusCompleted,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("create donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record donation")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"id": donation.ID})
}

// DonationsList returns only the caller's own donations.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	caller, ok := a.currentSponsor(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing sponsor context")
		return
	}

	donations, err := a.Donations.ListBySponsor(r.Context(), caller.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}

	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationDTO{
			ID:        d.ID,
			SponsorID: d.SponsorID,
			ChildID:   d.ChildID,
			Amount:    d.Amount,
			Currency:  d.Currency,
			Month:     d.Month,
			Status:    d.Status,
			CreatedAt: d.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, items)
}
