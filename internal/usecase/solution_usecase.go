package usecase

import (
	"context"

	"solhub/internal/domain/entity"

	"github.com/google/uuid"
)

// SolutionFileInput describes one attachment the client intends to upload.
type SolutionFileInput struct {
	Name      string
	Extension string
}

// PresignedUpload pairs a declared attachment with its allocated upload slot.
type PresignedUpload struct {
	Name      string
	UploadURL string
	PublicURL string
}

// CreateSolutionInput defines the data required to create a solution.
// SubjectID is the authenticated user creating it.
type CreateSolutionInput struct {
	SubjectID   uuid.UUID
	UserID      uuid.UUID
	Title       string
	Category    string
	Description string
	VideoURL    string
	Files       []SolutionFileInput
}

// UpdateSolutionInput defines the mutable solution fields.
// Nil pointers leave the current value untouched. New files are appended.
type UpdateSolutionInput struct {
	SubjectID   uuid.UUID
	SolutionID  uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Category    *string
	Description *string
	VideoURL    *string
	NewFiles    []SolutionFileInput
}

// DeleteSolutionInput carries the full ownership chain for a solution delete.
type DeleteSolutionInput struct {
	SubjectID    uuid.UUID
	AuthID       uuid.UUID // id asserted by the caller; must match the subject
	EnterpriseID uuid.UUID
	UserID       uuid.UUID
	SolutionID   uuid.UUID
}

// SolutionOutput wraps a single solution, plus upload slots for any files
// declared in the triggering create or update.
type SolutionOutput struct {
	Solution *entity.Solution
	Uploads  []PresignedUpload
}

// ListSolutionsOutput wraps an enterprise's solution collection.
type ListSolutionsOutput struct {
	Solutions []*entity.Solution
}

// SolutionUsecase defines the interface for solution operations.
type SolutionUsecase interface {
	CreateSolution(ctx context.Context, input *CreateSolutionInput) (*SolutionOutput, error)
	UpdateSolution(ctx context.Context, input *UpdateSolutionInput) (*SolutionOutput, error)
	// GetSolution requires only an authenticated subject; any valid token
	// may read a solution by id.
	GetSolution(ctx context.Context, solutionID uuid.UUID) (*SolutionOutput, error)
	// ListSolutions is readable by the enterprise itself or any of its members.
	ListSolutions(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*ListSolutionsOutput, error)
	// DeleteSolution walks the complete ownership chain. An enterprise may
	// delete any of its solutions; a user only their own.
	DeleteSolution(ctx context.Context, input *DeleteSolutionInput) error
}
