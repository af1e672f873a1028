package service

import "context"

// Credentials is the payload of a credential notification email.
type Credentials struct {
	RecipientName  string
	RecipientEmail string
	Password       string
	EnterpriseName string
}

// CredentialMailer abstracts the outbound email collaborator used to deliver
// generated login credentials to newly created (or locked-out) users.
// Delivery failure after the user record is persisted is non-fatal; callers
// report it as a warning, never roll back the write.
type CredentialMailer interface {
	SendCredentials(ctx context.Context, creds Credentials) error
}
