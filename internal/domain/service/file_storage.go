package service

import "context"

// FileUpload describes a pending attachment upload.
type FileUpload struct {
	Name      string
	Extension string
}

// PresignedFile is the result of preparing an upload slot for one file.
type PresignedFile struct {
	// UploadURL is a short-lived URL the client PUTs the file content to.
	UploadURL string
	// PublicURL is the stable URL the stored object will be served from.
	PublicURL string
}

// FileStorage abstracts the object-storage collaborator. The core never
// touches file bytes; it only hands out upload slots and deletes objects by
// their public URL.
type FileStorage interface {
	// PresignUpload allocates an object key for the described file and
	// returns the upload and public URLs for it.
	PresignUpload(ctx context.Context, enterpriseID string, upload FileUpload) (*PresignedFile, error)

	// Remove deletes the object behind a previously issued public URL.
	Remove(ctx context.Context, publicURL string) error
}
