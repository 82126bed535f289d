package handlers

import (
	"context"
	"net/http"
	"testing"

	"sponsorship/internal/middleware"
)

func TestSignup(t *testing.T) {
	ta := newTestApp()

	rec := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret","country":"KE"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}

	var resp authResponse
	decodeJSON(t, rec, &resp)
	if resp.APIKey == "" {
		t.Error("no api key issued")
	}
	if resp.SponsorID == "" || resp.Name != "Amina" {
		t.Errorf("response = %+v", resp)
	}

	stored, err := ta.sponsors.GetByID(context.Background(), resp.SponsorID)
	if err != nil {
		t.Fatalf("stored sponsor: %v", err)
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if stored.Country == nil || *stored.Country != "KE" {
		t.Errorf("stored country = %v", stored.Country)
	}
}

func TestSignupIssuesDistinctKeys(t *testing.T) {
	ta := newTestApp()

	first := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret"}`, nil)
	second := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Rosa","email":"rosa@example.org","password":"s3cret"}`, nil)

	var a, b authResponse
	decodeJSON(t, first, &a)
	decodeJSON(t, second, &b)
	if a.APIKey == b.APIKey {
		t.Fatal("two sponsors were issued the same key")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ta := newTestApp()

	first := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret"}`, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first signup status = %d", first.Code)
	}

	second := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Other","email":"amina@example.org","password":"different"}`, nil)
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate signup status = %d, want 409", second.Code)
	}
	if code := errCode(t, second); code != "conflict" {
		t.Errorf("error code = %q, want conflict", code)
	}
}

func TestSignupValidation(t *testing.T) {
	ta := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "missing email", body: `{"name":"Amina","password":"s3cret"}`},
		{name: "missing password", body: `{"name":"Amina","email":"a@x.com"}`},
		{name: "blank name", body: `{"name":"  ","email":"a@x.com","password":"s3cret"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(ta.app.Signup, http.MethodPost, "/auth/signup", tc.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSignupDefaultsCountryFromRequest(t *testing.T) {
	ta := newTestApp()

	req := do(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(context.WithValue(r.Context(), middleware.CountryKey, "PE"))
		ta.app.Signup(w, r)
	}, http.MethodPost, "/auth/signup",
		`{"name":"Rosa","email":"rosa@example.org","password":"s3cret"}`, nil)

	if req.Code != http.StatusOK {
		t.Fatalf("status = %d", req.Code)
	}

	var resp authResponse
	decodeJSON(t, req, &resp)
	stored, err := ta.sponsors.GetByID(context.Background(), resp.SponsorID)
	if err != nil {
		t.Fatalf("stored sponsor: %v", err)
	}
	if stored.Country == nil || *stored.Country != "PE" {
		t.Errorf("stored country = %v, want PE", stored.Country)
	}
}

func TestSigninRoundTrip(t *testing.T) {
	ta := newTestApp()

	signup := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret"}`, nil)
	if signup.Code != http.StatusOK {
		t.Fatalf("signup status = %d", signup.Code)
	}
	var created authResponse
	decodeJSON(t, signup, &created)

	signin := do(ta.app.Signin, http.MethodPost, "/auth/signin",
		`{"email":"amina@example.org","password":"s3cret"}`, nil)
	if signin.Code != http.StatusOK {
		t.Fatalf("signin status = %d; body %s", signin.Code, signin.Body)
	}
	var resp authResponse
	decodeJSON(t, signin, &resp)
	if resp.APIKey != created.APIKey {
		t.Error("signin returned a different key than signup issued")
	}
	if resp.SponsorID != created.SponsorID {
		t.Error("signin resolved a different sponsor")
	}
}

func TestSigninWrongPassword(t *testing.T) {
	ta := newTestApp()

	do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret"}`, nil)

	rec := do(ta.app.Signin, http.MethodPost, "/auth/signin",
		`{"email":"amina@example.org","password":"guess"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := errCode(t, rec); code != "unauthorized" {
		t.Errorf("error code = %q", code)
	}
}

func TestSigninUnknownEmail(t *testing.T) {
	ta := newTestApp()

	rec := do(ta.app.Signin, http.MethodPost, "/auth/signin",
		`{"email":"nobody@example.org","password":"s3cret"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSigninMintsMissingKey(t *testing.T) {
	ta := newTestApp()

	// Simulate an account imported without a key: sign up, then clear it.
	signup := do(ta.app.Signup, http.MethodPost, "/auth/signup",
		`{"name":"Amina","email":"amina@example.org","password":"s3cret"}`, nil)
	var created authResponse
	decodeJSON(t, signup, &created)

	ta.sponsors.mu.Lock()
	ta.sponsors.items[created.SponsorID].APIKey = nil
	ta.sponsors.mu.Unlock()

	rec := do(ta.app.Signin, http.MethodPost, "/auth/signin",
		`{"email":"amina@example.org","password":"s3cret"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body)
	}
	var resp authResponse
	decodeJSON(t, rec, &resp)
	if resp.APIKey == "" {
		t.Fatal("no key minted at signin")
	}

	stored, err := ta.sponsors.GetByID(context.Background(), created.SponsorID)
	if err != nil {
		t.Fatalf("stored sponsor: %v", err)
	}
	if stored.APIKey == nil || *stored.APIKey != resp.APIKey {
		t.Error("minted key was not persisted")
	}
}
