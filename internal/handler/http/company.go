package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reestr-app/reestr-backend-go/internal/domain/company"
	"github.com/reestr-app/reestr-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, "Unauthenticated")
		return
	}

	companies, err := c.companyService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list companies", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, companies)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, "Unauthenticated")
		return
	}

	var createReq company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := c.companyService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Failed to create company", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, "Unauthenticated")
		return
	}
	companyID := chi.URLParam(r, "id")

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	updated, err := c.companyService.Update(r.Context(), companyID, userID, updateReq)
	if err != nil {
		slog.Error("Failed to update company", "error", err, "company_id", companyID, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, "Unauthenticated")
		return
	}
	companyID := chi.URLParam(r, "id")

	if err := c.companyService.Delete(r.Context(), companyID, userID); err != nil {
		slog.Error("Failed to delete company", "error", err, "company_id", companyID, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
