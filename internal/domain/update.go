package domain

import "time"

// ChildUpdate is a progress note about a child, posted by and visible to
// the child's owning sponsor only.
type ChildUpdate struct {
	ID        string
	ChildID   string
	Title     string
	Content   *string
	PhotoURL  *string
	CreatedAt time.Time
}
