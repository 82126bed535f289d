package repo

import (
	"context"

	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
	"sponsorship/internal/sqlinline"
)

// UpdateRepositoryPG implements domain.UpdateRepository using PostgreSQL.
type UpdateRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUpdateRepository creates a new UpdateRepositoryPG.
func NewUpdateRepository(sql infra.SQLExecutor) *UpdateRepositoryPG {
	return &UpdateRepositoryPG{sql: sql}
}

// Create inserts a progress note for a child.
func (r *UpdateRepositoryPG) Create(ctx context.Context, update *domain.ChildUpdate) (*domain.ChildUpdate, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertChildUpdate,
		update.ChildID,
		update.Title,
		update.Content,
		update.PhotoURL,
	)

	if err := row.Scan(&update.ID, &update.CreatedAt); err != nil {
		return nil, err
	}
	return update, nil
}

// ListByChild returns every update posted for the child.
func (r *UpdateRepositoryPG) ListByChild(ctx context.Context, childID string) ([]domain.ChildUpdate, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListChildUpdates, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []domain.ChildUpdate
	for rows.Next() {
		var u domain.ChildUpdate
		if err := rows.Scan(&u.ID, &u.ChildID, &u.Title, &u.Content, &u.PhotoURL, &u.CreatedAt); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return updates, nil
}
