package handler

import (
	"log/slog"
	"net/http"

	"solhub/internal/delivery/http/response"
	"solhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnterpriseHandler holds dependencies for enterprise account handlers.
type EnterpriseHandler struct {
	authUC usecase.AuthUsecase
	uc     usecase.EnterpriseUsecase
	logger *slog.Logger
}

// NewEnterpriseHandler is the constructor for EnterpriseHandler, injected by Fx.
func NewEnterpriseHandler(authUC usecase.AuthUsecase, uc usecase.EnterpriseUsecase, logger *slog.Logger) *EnterpriseHandler {
	return &EnterpriseHandler{
		authUC: authUC,
		uc:     uc,
		logger: logger,
	}
}

// Register handles the enterprise registration request.
func (h *EnterpriseHandler) Register(c echo.Context) error {
	var req *RegisterEnterpriseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.RegisterEnterprise(c.Request().Context(), &usecase.RegisterEnterpriseInput{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEnterpriseResponse(output.Enterprise), "Enterprise registered successfully")
}

// Login handles the enterprise login request.
func (h *EnterpriseHandler) Login(c echo.Context) error {
	var req *LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.LoginEnterprise(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &TokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresIn:    output.ExpiresIn,
		Account:      toEnterpriseResponse(output.Enterprise),
	}, "Login successful")
}

// Get handles the request to read the authenticated enterprise's account.
func (h *EnterpriseHandler) Get(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetEnterprise(c.Request().Context(), subject, enterpriseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEnterpriseResponse(output.Enterprise), "Enterprise retrieved successfully")
}

// Update handles partial updates of the enterprise account.
func (h *EnterpriseHandler) Update(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req *UpdateEnterpriseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enterprise update input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEnterprise(c.Request().Context(), &usecase.UpdateEnterpriseInput{
		SubjectID:    subject,
		EnterpriseID: enterpriseID,
		Name:         req.Name,
		Email:        req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEnterpriseResponse(output.Enterprise), "Enterprise updated successfully")
}

// Deactivate handles the enterprise soft-delete request.
func (h *EnterpriseHandler) Deactivate(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateEnterprise(c.Request().Context(), subject, enterpriseID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Enterprise deactivated successfully")
}
