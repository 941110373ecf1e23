package company

import "context"

type CompanyRepository interface {
	// ListByOwner returns the owner's active records only.
	ListByOwner(ctx context.Context, ownerID int64) ([]Company, error)
	// GetByID returns an active record, ErrCompanyNotFound otherwise.
	GetByID(ctx context.Context, id string) (Company, error)
	// GetByINN looks the INN up across active and soft-deleted rows; the
	// unique index on inn guarantees at most one match.
	GetByINN(ctx context.Context, inn string) (Company, error)
	// Create inserts a new active record. A unique violation on inn is
	// returned as ErrINNExists.
	Create(ctx context.Context, newCompany Company) (Company, error)
	// Restore clears deleted_at on a soft-deleted record, replacing the
	// title and refreshing updated_at. Ownership is left untouched.
	Restore(ctx context.Context, id string, title string) (Company, error)
	UpdateTitle(ctx context.Context, id string, title string) (Company, error)
	SoftDelete(ctx context.Context, id string) error
}
