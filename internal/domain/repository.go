package domain

import "context"

// SponsorRepository defines access methods for sponsor accounts.
type SponsorRepository interface {
	// Create persists a new sponsor. The insert is conditional on the email
	// being free and returns ErrEmailTaken otherwise; callers never need a
	// separate existence check.
	Create(ctx context.Context, sponsor *Sponsor) (*Sponsor, error)
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	GetByEmail(ctx context.Context, email string) (*Sponsor, error)
	GetByAPIKey(ctx context.Context, key string) (*Sponsor, error)
	SetAPIKey(ctx context.Context, id, key string) error
}

// ChildRepository defines persistence for catalog entries.
type ChildRepository interface {
	Create(ctx context.Context, child *Child) (*Child, error)
	GetByID(ctx context.Context, id string) (*Child, error)
	List(ctx context.Context, filter ChildFilter) ([]Child, error)
	ListBySponsor(ctx context.Context, sponsorID string) ([]Child, error)
	// Claim marks the child sponsored by sponsorID. The write matches only
	// unsponsored rows, so concurrent claims cannot both succeed; it returns
	// ErrAlreadySponsored when the child is taken and ErrNotFound when the id
	// does not resolve.
	Claim(ctx context.Context, childID, sponsorID string) error
}

// DonationRepository handles donation persistence. Donations are immutable,
// so there is no update or delete.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) (*Donation, error)
	ListBySponsor(ctx context.Context, sponsorID string) ([]Donation, error)
}

// UpdateRepository handles child progress notes.
type UpdateRepository interface {
	Create(ctx context.Context, update *ChildUpdate) (*ChildUpdate, error)
	ListByChild(ctx context.Context, childID string) ([]ChildUpdate, error)
}
