package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
	"sponsorship/internal/sqlinline"
)

// SponsorRepositoryPG implements domain.SponsorRepository backed by PostgreSQL.
type SponsorRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSponsorRepository creates a new SponsorRepositoryPG.
func NewSponsorRepository(sql infra.SQLExecutor) *SponsorRepositoryPG {
	return &SponsorRepositoryPG{sql: sql}
}

// Create inserts a new sponsor. The statement only inserts when the email is
// free; no returned row means the address is taken and ErrEmailTaken comes
// back instead of a row.
func (r *SponsorRepositoryPG) Create(ctx context.Context, sponsor *domain.Sponsor) (*domain.Sponsor, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertSponsor,
		sponsor.Name,
		sponsor.Email,
		sponsor.PasswordHash,
		sponsor.Country,
		sponsor.APIKey,
	)

	if err := row.Scan(&sponsor.ID, &sponsor.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	sponsor.IsActive = true
	return sponsor, nil
}

// GetByID fetches a sponsor by UUID.
func (r *SponsorRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	return scanSponsor(r.sql.QueryRow(ctx, sqlinline.QSelectSponsorByID, id))
}

// GetByEmail fetches a sponsor by email address.
func (r *SponsorRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Sponsor, error) {
	return scanSponsor(r.sql.QueryRow(ctx, sqlinline.QSelectSponsorByEmail, email))
}

// GetByAPIKey fetches the sponsor holding the given bearer key.
func (r *SponsorRepositoryPG) GetByAPIKey(ctx context.Context, key string) (*domain.Sponsor, error) {
	return scanSponsor(r.sql.QueryRow(ctx, sqlinline.QSelectSponsorByAPIKey, key))
}

// SetAPIKey stores a freshly minted key on the sponsor row.
func (r *SponsorRepositoryPG) SetAPIKey(ctx context.Context, id, key string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetSponsorAPIKey, id, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSponsor(row pgx.Row) (*domain.Sponsor, error) {
	var s domain.Sponsor
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.PasswordHash,
		&s.Country,
		&s.Bio,
		&s.AvatarURL,
		&s.APIKey,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
