package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/reestr-app/reestr-backend-go/internal/domain/company"
	"github.com/reestr-app/reestr-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = "id, inn, title, user_id, created_at, updated_at, deleted_at"

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.INN, &c.Title, &c.UserID, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}

// ListByOwner implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE id = $1 AND deleted_at IS NULL
	`

	found, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return found, nil
}

// GetByINN implements company.CompanyRepository. Soft-deleted rows are
// included on purpose: the caller has to distinguish an active duplicate
// from a restorable one.
func (r *companyRepositoryImpl) GetByINN(ctx context.Context, inn string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE inn = $1
	`

	found, err := scanCompany(q.QueryRow(ctx, query, inn))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return found, nil
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, inn, title, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + companyColumns + `
	`

	id := newCompany.ID
	if id == "" {
		id = uuid.NewString()
	}

	created, err := scanCompany(q.QueryRow(ctx, query, id, newCompany.INN, newCompany.Title, newCompany.UserID))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return company.Company{}, company.ErrINNExists
		}
		return company.Company{}, err
	}
	return created, nil
}

// Restore implements company.CompanyRepository. Only soft-deleted rows
// qualify; user_id stays with the original owner.
func (r *companyRepositoryImpl) Restore(ctx context.Context, id string, title string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET deleted_at = NULL, title = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING ` + companyColumns + `
	`

	restored, err := scanCompany(q.QueryRow(ctx, query, id, title))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to restore company %s: %w", id, err)
	}
	return restored, nil
}

// UpdateTitle implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdateTitle(ctx context.Context, id string, title string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET title = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + companyColumns + `
	`

	updated, err := scanCompany(q.QueryRow(ctx, query, id, title))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update company %s: %w", id, err)
	}
	return updated, nil
}

// SoftDelete implements company.CompanyRepository.
func (r *companyRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to soft delete company %s: %w", id, err)
	}
	return nil
}
