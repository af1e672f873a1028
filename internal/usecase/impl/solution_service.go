package impl

import (
	"context"
	"log/slog"

	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"
	"solhub/internal/domain/service"
	"solhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// solutionService implements the SolutionUsecase interface.
type solutionService struct {
	solutionRepo repository.SolutionRepository
	resolver     *OwnershipResolver
	fileStorage  service.FileStorage
	logger       *slog.Logger
}

// SolutionServiceParams holds dependencies for solutionService, injected by Fx.
type SolutionServiceParams struct {
	fx.In

	SolutionRepo repository.SolutionRepository
	Resolver     *OwnershipResolver
	FileStorage  service.FileStorage
	Logger       *slog.Logger
}

// NewSolutionService is the constructor for solutionService.
func NewSolutionService(params SolutionServiceParams) usecase.SolutionUsecase {
	return &solutionService{
		solutionRepo: params.SolutionRepo,
		resolver:     params.Resolver,
		fileStorage:  params.FileStorage,
		logger:       params.Logger,
	}
}

func (srv *solutionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSolution creates a solution authored by the acting user. Declared
// attachments get presigned upload slots; their public URLs are persisted on
// the solution immediately, before the client uploads any bytes.
func (srv *solutionService) CreateSolution(ctx context.Context, input *usecase.CreateSolutionInput) (*usecase.SolutionOutput, error) {
	srv.log(ctx).Info("Creating solution", slog.Any("userID", input.UserID), slog.String("title", input.Title))

	if input.SubjectID != input.UserID {
		return nil, domainerrors.ErrUnauthorized
	}

	author, err := srv.resolver.loadUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	files, uploads, err := srv.presignFiles(ctx, author.EnterpriseID, input.Files)
	if err != nil {
		return nil, err
	}

	newSolution := &entity.Solution{
		EnterpriseID: author.EnterpriseID,
		UserID:       author.ID,
		Title:        input.Title,
		Category:     input.Category,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		Files:        files,
	}

	if err := srv.solutionRepo.Create(ctx, newSolution); err != nil {
		srv.log(ctx).Error("Failed to create solution", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create solution")
	}

	srv.log(ctx).Debug("Solution created", slog.Any("solutionID", newSolution.ID))

	return &usecase.SolutionOutput{Solution: newSolution, Uploads: uploads}, nil
}

// UpdateSolution applies field changes and appends any newly declared files.
// Only the creating user may update a solution.
func (srv *solutionService) UpdateSolution(ctx context.Context, input *usecase.UpdateSolutionInput) (*usecase.SolutionOutput, error) {
	if input.SubjectID != input.UserID {
		return nil, domainerrors.ErrUnauthorized
	}

	solution, err := srv.resolver.loadSolution(ctx, input.SolutionID)
	if err != nil {
		return nil, err
	}

	// The acting user is re-resolved from storage on every call. A token
	// outliving its deleted user must not keep write access.
	if _, err := srv.resolver.UserInEnterprise(ctx, solution.EnterpriseID, input.UserID); err != nil {
		return nil, err
	}

	if !solution.CreatedBy(input.UserID) {
		return nil, domainerrors.ErrSolutionNotOwnedByUser
	}

	if input.Title != nil {
		solution.Title = *input.Title
	}
	if input.Category != nil {
		solution.Category = *input.Category
	}
	if input.Description != nil {
		solution.Description = *input.Description
	}
	if input.VideoURL != nil {
		solution.VideoURL = *input.VideoURL
	}

	newFiles, uploads, err := srv.presignFiles(ctx, solution.EnterpriseID, input.NewFiles)
	if err != nil {
		return nil, err
	}
	solution.Files = append(solution.Files, newFiles...)

	if err := srv.solutionRepo.Update(ctx, solution); err != nil {
		srv.log(ctx).Error("Failed to update solution", slog.Any("solutionID", solution.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update solution")
	}

	return &usecase.SolutionOutput{Solution: solution, Uploads: uploads}, nil
}

// GetSolution retrieves a solution by id for any authenticated subject.
func (srv *solutionService) GetSolution(ctx context.Context, solutionID uuid.UUID) (*usecase.SolutionOutput, error) {
	solution, err := srv.resolver.loadSolution(ctx, solutionID)
	if err != nil {
		return nil, err
	}

	return &usecase.SolutionOutput{Solution: solution}, nil
}

// ListSolutions retrieves all solutions of the enterprise for the enterprise
// itself or one of its members.
func (srv *solutionService) ListSolutions(ctx context.Context, subjectID, enterpriseID uuid.UUID) (*usecase.ListSolutionsOutput, error) {
	if _, err := srv.resolver.SolutionReadableBySubject(ctx, enterpriseID, subjectID); err != nil {
		return nil, err
	}

	solutions, err := srv.solutionRepo.ListByEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list solutions")
	}

	return &usecase.ListSolutionsOutput{Solutions: solutions}, nil
}

// DeleteSolution walks the complete ownership chain and removes the solution
// with its stored attachments. Attachment removal failures are logged and
// swallowed; the database row is the source of truth.
func (srv *solutionService) DeleteSolution(ctx context.Context, input *usecase.DeleteSolutionInput) error {
	srv.log(ctx).Info("Deleting solution", slog.Any("solutionID", input.SolutionID), slog.Any("subjectID", input.SubjectID))

	if input.AuthID != input.SubjectID {
		return domainerrors.ErrUnauthorized
	}

	solution, err := srv.resolver.SolutionDeletableBySubject(ctx, input.EnterpriseID, input.UserID, input.SolutionID, input.SubjectID)
	if err != nil {
		return err
	}

	if err := srv.solutionRepo.Delete(ctx, solution.ID); err != nil {
		if errors.Is(err, repository.ErrSolutionNotFound) {
			return domainerrors.ErrSolutionNotFound
		}

		return errors.Wrap(err, "failed to delete solution")
	}

	for _, file := range solution.Files {
		if err := srv.fileStorage.Remove(ctx, file.URL); err != nil {
			srv.log(ctx).Warn("Failed to remove solution attachment", slog.String("url", file.URL), slog.Any("error", err))
		}
	}

	return nil
}

// presignFiles allocates upload slots for the declared files and returns the
// persistable descriptors next to the upload instructions for the client.
func (srv *solutionService) presignFiles(ctx context.Context, enterpriseID uuid.UUID, declared []usecase.SolutionFileInput) ([]entity.SolutionFile, []usecase.PresignedUpload, error) {
	if len(declared) == 0 {
		return nil, nil, nil
	}

	files := make([]entity.SolutionFile, 0, len(declared))
	uploads := make([]usecase.PresignedUpload, 0, len(declared))
	for _, f := range declared {
		presigned, err := srv.fileStorage.PresignUpload(ctx, enterpriseID.String(), service.FileUpload{
			Name:      f.Name,
			Extension: f.Extension,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to presign attachment upload")
		}

		files = append(files, entity.SolutionFile{
			Name:      f.Name,
			URL:       presigned.PublicURL,
			Extension: f.Extension,
		})
		uploads = append(uploads, usecase.PresignedUpload{
			Name:      f.Name,
			UploadURL: presigned.UploadURL,
			PublicURL: presigned.PublicURL,
		})
	}

	return files, uploads, nil
}
