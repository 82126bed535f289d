package domain

import "time"

// Sponsor represents a registered supporter who can claim children and
// record donations. The API key is the long-lived bearer credential carried
// on every authenticated request.
type Sponsor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Country      *string
	Bio          *string
	AvatarURL    *string
	APIKey       *string
	IsActive     bool
	CreatedAt    time.Time
}

// HasAPIKey reports whether the sponsor already holds an issued key.
// Rows imported out of band may not have one until first signin.
func (s Sponsor) HasAPIKey() bool {
	return s.APIKey != nil && *s.APIKey != ""
}
