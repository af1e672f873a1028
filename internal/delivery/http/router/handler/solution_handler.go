package handler

import (
	"log/slog"
	"net/http"

	"solhub/internal/delivery/http/response"
	"solhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SolutionHandler holds dependencies for solution handlers.
type SolutionHandler struct {
	uc     usecase.SolutionUsecase
	logger *slog.Logger
}

// NewSolutionHandler is the constructor for SolutionHandler, injected by Fx.
func NewSolutionHandler(uc usecase.SolutionUsecase, logger *slog.Logger) *SolutionHandler {
	return &SolutionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a user creating a solution. Declared files come back as
// presigned upload slots next to the persisted solution.
func (h *SolutionHandler) Create(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req *CreateSolutionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid solution input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateSolution(c.Request().Context(), &usecase.CreateSolutionInput{
		SubjectID:   subject,
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Files:       toSolutionFileInputs(req.Files),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSolutionWithUploads(output), "Solution created successfully")
}

// Update handles partial updates of a solution by its creator.
func (h *SolutionHandler) Update(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	solutionID, err := pathUUID(c, "solutionId")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req *UpdateSolutionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid solution update input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateSolution(c.Request().Context(), &usecase.UpdateSolutionInput{
		SubjectID:   subject,
		SolutionID:  solutionID,
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		NewFiles:    toSolutionFileInputs(req.NewFiles),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSolutionWithUploads(output), "Solution updated successfully")
}

// Get handles reading a single solution. Any authenticated subject may read.
func (h *SolutionHandler) Get(c echo.Context) error {
	solutionID, err := pathUUID(c, "solutionId")
	if err != nil {
		return err
	}

	output, err := h.uc.GetSolution(c.Request().Context(), solutionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSolutionResponse(output.Solution), "Solution retrieved successfully")
}

// List handles reading an enterprise's solution collection. Allowed for the
// enterprise itself and for its members.
func (h *SolutionHandler) List(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ListSolutions(c.Request().Context(), subject, enterpriseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSolutionResponses(output.Solutions), "Solutions retrieved successfully")
}

// Delete handles deleting a solution through its full ownership chain.
func (h *SolutionHandler) Delete(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}
	solutionID, err := pathUUID(c, "solutionId")
	if err != nil {
		return err
	}
	authID, err := pathUUID(c, "authId")
	if err != nil {
		return err
	}
	enterpriseID, err := pathUUID(c, "enterpriseId")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSolution(c.Request().Context(), &usecase.DeleteSolutionInput{
		SubjectID:    subject,
		AuthID:       authID,
		EnterpriseID: enterpriseID,
		UserID:       userID,
		SolutionID:   solutionID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Solution deleted successfully")
}
