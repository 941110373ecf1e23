package company

import (
	"time"

	"github.com/reestr-app/reestr-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	INN       string    `json:"inn"`
	Title     string    `json:"title"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts the entity into the wire representation.
func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		INN:       c.INN,
		Title:     c.Title,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToResponseList never returns nil so an empty list serializes as [].
func ToResponseList(companies []Company) []CompanyResponse {
	result := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, ToResponse(c))
	}
	return result
}

type CreateCompanyRequest struct {
	INN   string `json:"inn"`
	Title string `json:"title"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.INN) {
		errs = append(errs, validator.ValidationError{
			Field:   "inn",
			Message: "inn is required",
		})
	} else if len(r.INN) != 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "inn",
			Message: "inn must be exactly 12 characters",
		})
	}
	errs = append(errs, validateTitle(r.Title)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	Title string `json:"title"`
}

func (r *UpdateCompanyRequest) Validate() error {
	errs := validateTitle(r.Title)

	if len(errs) > 0 {
		return validator.ValidationErrors(errs)
	}

	return nil
}

func validateTitle(title string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	return errs
}
