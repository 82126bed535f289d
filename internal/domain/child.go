package domain

import "time"

// Age bounds for catalog entries.
const (
	MinChildAge = 0
	MaxChildAge = 18
)

// Child is a catalog entry for a sponsorship-eligible beneficiary. The
// sponsored flag and the owning-sponsor reference flip exactly once, on a
// successful claim; there is no unsponsor or transfer path.
type Child struct {
	ID          string
	Name        string
	Age         int
	Country     string
	Bio         *string
	PhotoURL    *string
	Sponsored   bool
	SponsoredBy *string
	CreatedAt   time.Time
}

// OwnedBy reports whether sponsorID is the child's owning sponsor.
func (c Child) OwnedBy(sponsorID string) bool {
	return c.SponsoredBy != nil && *c.SponsoredBy == sponsorID
}

// ValidChildAge reports whether age is inside the catalog bounds.
func ValidChildAge(age int) bool {
	return age >= MinChildAge && age <= MaxChildAge
}

// ChildFilter narrows catalog listings. The zero value matches everything:
// an empty Country means no country filter, a nil Sponsored means both
// sponsored and unsponsored children.
type ChildFilter struct {
	Country   string
	Sponsored *bool
}
