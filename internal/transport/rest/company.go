package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/internal/service/company"
)

//go:generate moq -out company_service_mock_test.go -pkg rest . companyService

type companyService interface {
	RegisterCompany(ctx context.Context, input company.RegisterCompanyInput) (*company.RegisterResult, error)
	CreateUser(ctx context.Context, input company.CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserActive(ctx context.Context, input company.SetUserActiveInput) (*domain.User, error)
}

// CompanyHandler serves company registration and user management.
type CompanyHandler struct {
	svc companyService
	log *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: logger.With("handler", "company")}
}

type registerCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	AdminEmail  string `json:"adminEmail" validate:"required"`
	AdminName   string `json:"adminName" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type registerCompanyResponse struct {
	Company companyResponse `json:"company"`
	Admin   userResponse    `json:"admin"`
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin member"`
}

type setUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Register handles POST /companies.
func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCompanyRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	result, err := h.svc.RegisterCompany(r.Context(), company.RegisterCompanyInput{
		CompanyName: req.CompanyName,
		AdminEmail:  req.AdminEmail,
		AdminName:   req.AdminName,
		Password:    req.Password,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerCompanyResponse{
		Company: companyResponse{
			ID:        result.Company.ID.String(),
			Name:      result.Company.Name,
			CreatedAt: result.Company.CreatedAt,
		},
		Admin: toUserResponse(*result.Admin),
	})
}

// ListUsers handles GET /users.
func (h *CompanyHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(users, func(u domain.User, _ int) userResponse { return toUserResponse(u) }))
}

// CreateUser handles POST /users.
func (h *CompanyHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), company.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*user))
}

// SetUserActive handles PATCH /users/{id}/active.
func (h *CompanyHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req setUserActiveRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	user, err := h.svc.SetUserActive(r.Context(), company.SetUserActiveInput{
		UserID: userID,
		Active: *req.Active,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*user))
}
