package repo

import (
	"context"

	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
	"sponsorship/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.SponsorID,
		donation.ChildID,
		donation.Amount,
		donation.Currency,
		donation.Month,
		donation.Status,
	)

	if err := row.Scan(&donation.ID, &donation.CreatedAt); err != nil {
		return nil, err
	}
	return donation, nil
}

// ListBySponsor returns every donation the sponsor has recorded.
func (r *DonationRepositoryPG) ListBySponsor(ctx context.Context, sponsorID string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsBySponsor, sponsorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.SponsorID, &d.ChildID, &d.Amount, &d.Currency, &d.Month, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return donations, nil
}
