package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrINNExists       = errors.New("company with this INN already exists")
	ErrNotCompanyOwner = errors.New("company belongs to another user")
)
