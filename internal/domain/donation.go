package domain

import "time"

// DonationStatusCompleted is the only status the service records; there is
// no payment gateway behind it, so a persisted donation is a completed one.
const DonationStatusCompleted = "completed"

// DefaultCurrency is applied when a donation omits the currency code.
const DefaultCurrency = "USD"

// Donation is an immutable contribution record tying a sponsor to a child
// they own. Month optionally tags the YYYY-MM period the donation covers.
type Donation struct {
	ID        string
	SponsorID string
	ChildID   string
	Amount    float64
	Currency  string
	Month     *string
	Status    string
	CreatedAt time.Time
}
