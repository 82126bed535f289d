package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sponsorship/internal/domain"
	"sponsorship/internal/middleware"
)

// In-memory repositories with the same contract the SQL layer provides:
// conditional sponsor insert, conditional claim, copies on the way in and
// out so handler code cannot mutate stored state by accident.

type memSponsorRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Sponsor
}

func newMemSponsorRepo() *memSponsorRepo {
	return &memSponsorRepo{items: map[string]*domain.Sponsor{}}
}

func (m *memSponsorRepo) Create(ctx context.Context, s *domain.Sponsor) (*domain.Sponsor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.Email == s.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	s.ID = uuid.NewString()
	s.IsActive = true
	s.CreatedAt = time.Now()
	cp := *s
	m.items[s.ID] = &cp
	return s, nil
}

func (m *memSponsorRepo) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memSponsorRepo) GetByEmail(ctx context.Context, email string) (*domain.Sponsor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memSponsorRepo) GetByAPIKey(ctx context.Context, key string) (*domain.Sponsor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.APIKey != nil && *s.APIKey == key {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memSponsorRepo) SetAPIKey(ctx context.Context, id, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	k := key
	s.APIKey = &k
	return nil
}

func (m *memSponsorRepo) delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
}

type memChildRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Child
}

func newMemChildRepo() *memChildRepo {
	return &memChildRepo{items: map[string]*domain.Child{}}
}

func (m *memChildRepo) Create(ctx context.Context, c *domain.Child) (*domain.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.NewString()
	c.Sponsored = false
	c.SponsoredBy = nil
	c.CreatedAt = time.Now()
	cp := *c
	m.items[c.ID] = &cp
	return c, nil
}

func (m *memChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memChildRepo) List(ctx context.Context, filter domain.ChildFilter) ([]domain.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Child
	for _, c := range m.items {
		if filter.Country != "" && c.Country != filter.Country {
			continue
		}
		if filter.Sponsored != nil && c.Sponsored != *filter.Sponsored {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *memChildRepo) ListBySponsor(ctx context.Context, sponsorID string) ([]domain.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Child
	for _, c := range m.items {
		if c.SponsoredBy != nil && *c.SponsoredBy == sponsorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memChildRepo) Claim(ctx context.Context, childID, sponsorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[childID]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Sponsored {
		return domain.ErrAlreadySponsored
	}
	owner := sponsorID
	c.Sponsored = true
	c.SponsoredBy = &owner
	return nil
}

type memDonationRepo struct {
	mu    sync.Mutex
	items []domain.Donation
}

func newMemDonationRepo() *memDonationRepo { return &memDonationRepo{} }

func (m *memDonationRepo) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	m.items = append(m.items, *d)
	return d, nil
}

func (m *memDonationRepo) ListBySponsor(ctx context.Context, sponsorID string) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Donation
	for _, d := range m.items {
		if d.SponsorID == sponsorID {
			out = append(out, d)
		}
	}
	return out, nil
}

type memUpdateRepo struct {
	mu    sync.Mutex
	items []domain.ChildUpdate
}

func newMemUpdateRepo() *memUpdateRepo { return &memUpdateRepo{} }

func (m *memUpdateRepo) Create(ctx context.Context, u *domain.ChildUpdate) (*domain.ChildUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	m.items = append(m.items, *u)
	return u, nil
}

func (m *memUpdateRepo) ListByChild(ctx context.Context, childID string) ([]domain.ChildUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ChildUpdate
	for _, u := range m.items {
		if u.ChildID == childID {
			out = append(out, u)
		}
	}
	return out, nil
}

type testApp struct {
	app       *App
	sponsors  *memSponsorRepo
	children  *memChildRepo
	donations *memDonationRepo
	updates   *memUpdateRepo
}

func newTestApp() *testApp {
	sponsors := newMemSponsorRepo()
	children := newMemChildRepo()
	donations := newMemDonationRepo()
	updates := newMemUpdateRepo()
	return &testApp{
		app: &App{
			Logger:    zerolog.Nop(),
			Sponsors:  sponsors,
			Children:  children,
			Donations: donations,
			Updates:   updates,
		},
		sponsors:  sponsors,
		children:  children,
		donations: donations,
		updates:   updates,
	}
}

// seedSponsor inserts a sponsor directly. The password hash is a placeholder;
// tests that verify credentials seed through the signup handler instead.
func (ta *testApp) seedSponsor(t *testing.T, name, email, key string) *domain.Sponsor {
	t.Helper()
	s, err := ta.sponsors.Create(context.Background(), &domain.Sponsor{
		Name:         name,
		Email:        email,
		PasswordHash: "seeded",
		APIKey:       &key,
	})
	if err != nil {
		t.Fatalf("seed sponsor %s: %v", email, err)
	}
	return s
}

func (ta *testApp) seedChild(t *testing.T, name string, age int, country string) *domain.Child {
	t.Helper()
	c, err := ta.children.Create(context.Background(), &domain.Child{
		Name:    name,
		Age:     age,
		Country: country,
	})
	if err != nil {
		t.Fatalf("seed child %s: %v", name, err)
	}
	return c
}

func (ta *testApp) claimChild(t *testing.T, childID, sponsorID string) {
	t.Helper()
	if err := ta.children.Claim(context.Background(), childID, sponsorID); err != nil {
		t.Fatalf("seed claim: %v", err)
	}
}

// do invokes a handler directly, optionally with an authenticated identity
// on the context.
func do(h http.HandlerFunc, method, target, body string, sponsor *domain.Sponsor) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if sponsor != nil {
		req = req.WithContext(middleware.ContextWithSponsor(req.Context(), middleware.AuthSponsor{
			ID:    sponsor.ID,
			Email: sponsor.Email,
		}))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeJSON(t, rec, &body)
	return body.Error.Code
}
