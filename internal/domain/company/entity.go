package company

import "time"

// Company is a company record owned by the user who created it. A record is
// soft-deleted by setting DeletedAt; the row stays in storage and its INN
// stays reserved for restoration.
type Company struct {
	ID        string
	INN       string
	Title     string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the record is soft-deleted.
func (c Company) Deleted() bool {
	return c.DeletedAt != nil
}
