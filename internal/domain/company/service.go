package company

import "context"

type CompanyService interface {
	ListMine(ctx context.Context, userID int64) ([]CompanyResponse, error)
	Create(ctx context.Context, userID int64, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, userID int64, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string, userID int64) error
}
