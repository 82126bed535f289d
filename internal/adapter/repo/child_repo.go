package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
	"sponsorship/internal/sqlinline"
)

// ChildRepositoryPG implements domain.ChildRepository backed by PostgreSQL.
type ChildRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewChildRepository creates a new ChildRepositoryPG.
func NewChildRepository(sql infra.SQLExecutor) *ChildRepositoryPG {
	return &ChildRepositoryPG{sql: sql}
}

// Create inserts a new catalog entry. New children start unsponsored.
func (r *ChildRepositoryPG) Create(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertChild,
		child.Name,
		child.Age,
		child.Country,
		child.Bio,
		child.PhotoURL,
	)

	if err := row.Scan(&child.ID, &child.CreatedAt); err != nil {
		return nil, err
	}

	child.Sponsored = false
	child.SponsoredBy = nil
	return child, nil
}

// GetByID fetches a child by UUID.
func (r *ChildRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	return scanChild(r.sql.QueryRow(ctx, sqlinline.QSelectChildByID, id))
}

// List returns catalog entries matching the filter.
func (r *ChildRepositoryPG) List(ctx context.Context, filter domain.ChildFilter) ([]domain.Child, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListChildren, filter.Country, filter.Sponsored)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectChildren(rows)
}

// ListBySponsor returns every child owned by the sponsor.
func (r *ChildRepositoryPG) ListBySponsor(ctx context.Context, sponsorID string) ([]domain.Child, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListChildrenBySponsor, sponsorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectChildren(rows)
}

// Claim marks the child as sponsored by sponsorID. The update matches only
// unsponsored rows, so two concurrent claims cannot both win; when no row is
// updated a follow-up existence probe tells Conflict apart from NotFound.
func (r *ChildRepositoryPG) Claim(ctx context.Context, childID, sponsorID string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QClaimChild, childID, sponsorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.sql.QueryRow(ctx, sqlinline.QChildExists, childID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadySponsored
	}
	return domain.ErrNotFound
}

func scanChild(row pgx.Row) (*domain.Child, error) {
	var c domain.Child
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Age,
		&c.Country,
		&c.Bio,
		&c.PhotoURL,
		&c.Sponsored,
		&c.SponsoredBy,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func collectChildren(rows pgx.Rows) ([]domain.Child, error) {
	var children []domain.Child
	for rows.Next() {
		var c domain.Child
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.Country, &c.Bio, &c.PhotoURL, &c.Sponsored, &c.SponsoredBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return children, nil
}
