package handler

import (
	"time"

	"solhub/internal/domain/entity"
	"solhub/internal/usecase"

	"github.com/google/uuid"
)

// --- Request DTOs ---

// RegisterEnterpriseRequest is the payload for enterprise registration.
type RegisterEnterpriseRequest struct {
	Name     string `json:"name" validate:"required"`
	TaxID    string `json:"tax_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for both enterprise and user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateEnterpriseRequest carries the mutable enterprise fields.
type UpdateEnterpriseRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// CreateUserRequest is the payload for an enterprise creating a user.
// No password field: the password is generated and emailed.
type CreateUserRequest struct {
	Type      string `json:"type" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	CPF       string `json:"cpf" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateUserRequest carries the mutable user fields.
type UpdateUserRequest struct {
	Type      *string `json:"type,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// SolutionFileRequest declares one attachment the client intends to upload.
type SolutionFileRequest struct {
	Name      string `json:"name" validate:"required"`
	Extension string `json:"extension" validate:"required"`
}

// CreateSolutionRequest is the payload for creating a solution.
type CreateSolutionRequest struct {
	Title       string                `json:"title" validate:"required"`
	Category    string                `json:"category" validate:"required"`
	Description string                `json:"description" validate:"required"`
	VideoURL    string                `json:"video_url,omitempty"`
	Files       []SolutionFileRequest `json:"files,omitempty" validate:"dive"`
}

// UpdateSolutionRequest carries the mutable solution fields.
type UpdateSolutionRequest struct {
	Title       *string               `json:"title,omitempty"`
	Category    *string               `json:"category,omitempty"`
	Description *string               `json:"description,omitempty"`
	VideoURL    *string               `json:"video_url,omitempty"`
	NewFiles    []SolutionFileRequest `json:"new_files,omitempty" validate:"dive"`
}

// CreateCategoryRequest is the payload for creating a solution category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// --- Response DTOs ---
// Entities are never serialized directly so that credential fields
// (password hash, recovery password) cannot leak through a handler.

// EnterpriseResponse is the public shape of an enterprise.
type EnterpriseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	EnterpriseID uuid.UUID `json:"enterprise_id"`
	Type         string    `json:"type"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SolutionResponse is the public shape of a solution.
type SolutionResponse struct {
	ID           uuid.UUID             `json:"id"`
	EnterpriseID uuid.UUID             `json:"enterprise_id"`
	UserID       uuid.UUID             `json:"user_id"`
	Title        string                `json:"title"`
	Category     string                `json:"category"`
	Description  string                `json:"description"`
	VideoURL     string                `json:"video_url,omitempty"`
	Files        []entity.SolutionFile `json:"files"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// PresignedUploadResponse is one allocated upload slot.
type PresignedUploadResponse struct {
	Name      string `json:"name"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// SolutionWithUploadsResponse pairs a solution with upload slots for the
// files declared in the triggering request.
type SolutionWithUploadsResponse struct {
	Solution *SolutionResponse         `json:"solution"`
	Uploads  []PresignedUploadResponse `json:"uploads,omitempty"`
}

// CategoryResponse is the public shape of a solution category.
type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	EnterpriseID uuid.UUID `json:"enterprise_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenPairResponse carries the issued tokens alongside the account.
// ExpiresIn is the access token lifetime in seconds.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Account      any    `json:"account"`
}

// --- Mappers ---

func toEnterpriseResponse(e *entity.Enterprise) *EnterpriseResponse {
	if e == nil {
		return nil
	}

	return &EnterpriseResponse{
		ID:        e.ID,
		Name:      e.Name,
		TaxID:     e.TaxID,
		Email:     e.Email,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		EnterpriseID: u.EnterpriseID,
		Type:         u.Type,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CPF:          u.CPF,
		Email:        u.Email,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

func toSolutionResponse(s *entity.Solution) *SolutionResponse {
	if s == nil {
		return nil
	}

	files := s.Files
	if files == nil {
		files = []entity.SolutionFile{}
	}

	return &SolutionResponse{
		ID:           s.ID,
		EnterpriseID: s.EnterpriseID,
		UserID:       s.UserID,
		Title:        s.Title,
		Category:     s.Category,
		Description:  s.Description,
		VideoURL:     s.VideoURL,
		Files:        files,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSolutionResponses(solutions []*entity.Solution) []*SolutionResponse {
	out := make([]*SolutionResponse, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, toSolutionResponse(s))
	}

	return out
}

func toSolutionWithUploads(out *usecase.SolutionOutput) *SolutionWithUploadsResponse {
	uploads := make([]PresignedUploadResponse, 0, len(out.Uploads))
	for _, u := range out.Uploads {
		uploads = append(uploads, PresignedUploadResponse{
			Name:      u.Name,
			UploadURL: u.UploadURL,
			PublicURL: u.PublicURL,
		})
	}

	return &SolutionWithUploadsResponse{
		Solution: toSolutionResponse(out.Solution),
		Uploads:  uploads,
	}
}

func toCategoryResponse(c *entity.SolutionCategory) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:           c.ID,
		EnterpriseID: c.EnterpriseID,
		Name:         c.Name,
		CreatedAt:    c.CreatedAt,
	}
}

func toCategoryResponses(categories []*entity.SolutionCategory) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}

	return out
}

func toSolutionFileInputs(files []SolutionFileRequest) []usecase.SolutionFileInput {
	out := make([]usecase.SolutionFileInput, 0, len(files))
	for _, f := range files {
		out = append(out, usecase.SolutionFileInput{
			Name:      f.Name,
			Extension: f.Extension,
		})
	}

	return out
}
