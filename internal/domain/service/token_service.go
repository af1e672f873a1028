package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying signed session tokens.
//
// Tokens carry only the subject id plus issued-at/expiry claims. Authorization
// is always re-derived from the subject's current stored state, never from
// token claims, so nothing else belongs in the payload. Access and refresh
// tokens are signed with independent secrets; a token of one kind never
// verifies as the other.
type TokenService interface {
	// IssueAccess creates a short-lived access token for the given subject.
	IssueAccess(subjectID uuid.UUID) (string, error)

	// IssueRefresh creates a longer-lived refresh token for the given subject.
	IssueRefresh(subjectID uuid.UUID) (string, error)

	// VerifyAccess validates an access token and returns its subject id.
	// Expired, malformed and wrongly-signed tokens all fail; callers do not
	// need to distinguish the cases.
	VerifyAccess(token string) (uuid.UUID, error)

	// VerifyRefresh validates a refresh token and returns its subject id.
	VerifyRefresh(token string) (uuid.UUID, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
