package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sponsorship/internal/auth"
	"sponsorship/internal/domain"
	"sponsorship/internal/middleware"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	APIKey    string `json:"api_key"`
	SponsorID string `json:"sponsor_id"`
	Name      string `json:"name"`
}

// Signup registers a sponsor and hands back their bearer key. When the
// payload omits a country, the request's resolved origin country is used.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name, email and password are required")
		return
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = middleware.CountryFromContext(r.Context())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register sponsor")
		return
	}

	key, err := auth.NewAPIKey()
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate api key failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register sponsor")
		return
	}

	sponsor := &domain.Sponsor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		APIKey:       &key,
	}
	if country != "" {
		sponsor.Country = &country
	}

	created, err := a.Sponsors.Create(r.Context(), sponsor)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			a.error(w, http.StatusConflict, "conflict", "email already registered")
			return
		}
		a.Logger.Error().Err(err).Msg("create sponsor failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register sponsor")
		return
	}

	a.json(w, http.StatusOK, authResponse{
		APIKey:    key,
		SponsorID: created.ID,
		Name:      created.Name,
	})
}

// Signin verifies the password and returns the sponsor's key, minting one
// first for accounts that do not hold a key yet.
func (a *App) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}

	sponsor, err := a.Sponsors.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "no account with that email")
			return
		}
		a.Logger.Error().Err(err).Msg("load sponsor failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign in")
		return
	}

	if !auth.CheckPassword(sponsor.PasswordHash, req.Password) {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	key := ""
	if sponsor.HasAPIKey() {
		key = *sponsor.APIKey
	} else {
		key, err = auth.NewAPIKey()
		if err != nil {
			a.Logger.Error().Err(err).Msg("generate api key failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to sign in")
			return
		}
		if err := a.Sponsors.SetAPIKey(r.Context(), sponsor.ID, key); err != nil {
			a.Logger.Error().Err(err).Msg("store api key failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to sign in")
			return
		}
	}

	a.json(w, http.StatusOK, authResponse{
		APIKey:    key,
		SponsorID: sponsor.ID,
		Name:      sponsor.Name,
	})
}
