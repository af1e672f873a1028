package handler

import (
	"log/slog"
	"net/http"

	"solhub/internal/delivery/http/response"
	"solhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for solution-category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles an enterprise creating a solution category.
func (h *CategoryHandler) Create(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req *CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		SubjectID:    subject,
		EnterpriseID: enterpriseID,
		Name:         req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(output.Category), "Category created successfully")
}

// List handles reading an enterprise's categories.
func (h *CategoryHandler) List(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ListCategories(c.Request().Context(), subject, enterpriseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(output.Categories), "Categories retrieved successfully")
}
