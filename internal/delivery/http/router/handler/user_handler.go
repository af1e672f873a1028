package handler

import (
	"log/slog"
	"net/http"

	"solhub/internal/delivery/http/response"
	"solhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(authUC usecase.AuthUsecase, uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		authUC: authUC,
		uc:     uc,
		logger: logger,
	}
}

// Create handles an enterprise creating one of its users.
// The generated password is emailed to the user, never returned.
func (h *UserHandler) Create(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req *CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		SubjectID:    subject,
		EnterpriseID: enterpriseID,
		Type:         req.Type,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CPF:          req.CPF,
		Email:        req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User created successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req *LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.LoginUser(c.Request().Context(), &usecase.LoginInput{
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
		Account:      toUserResponse(output.User),
	}, "Login successful")
}

// List handles the request for an enterprise's user roster.
func (h *UserHandler) List(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ListUsers(c.Request().Context(), subject, enterpriseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(output.Users), "Users retrieved successfully")
}

// Get handles the request for a single user.
func (h *UserHandler) Get(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	output, err := h.uc.GetUser(c.Request().Context(), subject, enterpriseID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "User retrieved successfully")
}

// Update handles partial updates of a user, including soft delete
// through is_active=false.
func (h *UserHandler) Update(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	var req *UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		SubjectID:    subject,
		EnterpriseID: enterpriseID,
		UserID:       userID,
		Type:         req.Type,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "User updated successfully")
}

// Delete handles the permanent removal of a user.
func (h *UserHandler) Delete(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), subject, enterpriseID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// ResendCredentials handles re-sending a user's generated credentials by email.
func (h *UserHandler) ResendCredentials(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.authUC.ResendCredentials(c.Request().Context(), &usecase.ResendCredentialsInput{
		SubjectID:    subject,
		EnterpriseID: enterpriseID,
		UserID:       userID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Credentials sent successfully")
}
