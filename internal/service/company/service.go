package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/reestr-app/reestr-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepository company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepository: companyRepository}
}

// ListMine implements company.CompanyService.
func (s *CompanyServiceImpl) ListMine(ctx context.Context, userID int64) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return company.ToResponseList(companies), nil
}

// Create implements company.CompanyService. Three-way decision on the INN:
// no record -> insert, active record -> conflict, soft-deleted record ->
// restore it with the new title, keeping the original owner and id.
func (s *CompanyServiceImpl) Create(ctx context.Context, userID int64, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	existing, err := s.companyRepository.GetByINN(ctx, req.INN)
	switch {
	case errors.Is(err, company.ErrCompanyNotFound):
		created, err := s.companyRepository.Create(ctx, company.Company{
			INN:    req.INN,
			Title:  req.Title,
			UserID: userID,
		})
		if err != nil {
			// ErrINNExists here means the lookup raced with a concurrent
			// create; the unique index already decided the winner.
			return company.CompanyResponse{}, err
		}
		return company.ToResponse(created), nil

	case err != nil:
		return company.CompanyResponse{}, fmt.Errorf("failed to look up INN: %w", err)

	case !existing.Deleted():
		return company.CompanyResponse{}, company.ErrINNExists

	default:
		restored, err := s.companyRepository.Restore(ctx, existing.ID, req.Title)
		if err != nil {
			if errors.Is(err, company.ErrCompanyNotFound) {
				// The record was restored by someone else between the
				// lookup and the update.
				return company.CompanyResponse{}, company.ErrINNExists
			}
			return company.CompanyResponse{}, err
		}
		return company.ToResponse(restored), nil
	}
}

// Update implements company.CompanyService. The ownership check runs before
// title validation, so a non-owner always sees the authorization failure.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, userID int64, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	found, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if found.UserID != userID {
		return company.CompanyResponse{}, company.ErrNotCompanyOwner
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companyRepository.UpdateTitle(ctx, id, req.Title)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string, userID int64) error {
	found, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if found.UserID != userID {
		return company.ErrNotCompanyOwner
	}

	return s.companyRepository.SoftDelete(ctx, id)
}
