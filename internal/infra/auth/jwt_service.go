// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"solhub/config"
	"solhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
//
// Access and refresh tokens are signed with independent secrets, so a leaked
// refresh secret cannot forge access tokens and vice versa. There is no
// revocation list; tokens stay valid until natural expiry.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccess creates a short-lived access token for the given subject.
func (s *jwtService) IssueAccess(subjectID uuid.UUID) (string, error) {
	return s.sign(subjectID, s.accessTTL, s.accessSecret)
}

// IssueRefresh creates a longer-lived refresh token for the given subject.
func (s *jwtService) IssueRefresh(subjectID uuid.UUID) (string, error) {
	return s.sign(subjectID, s.refreshTTL, s.refreshSecret)
}

// VerifyAccess validates an access token and returns its subject id.
func (s *jwtService) VerifyAccess(token string) (uuid.UUID, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its subject id.
func (s *jwtService) VerifyRefresh(token string) (uuid.UUID, error) {
	return s.verify(token, s.refreshSecret)
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// sign creates a JWT carrying only the subject id plus issued-at/expiry.
// Authorization is re-derived from stored state on every request, so no role
// or permission claims belong in the payload.
func (s *jwtService) sign(subjectID uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// verify parses a token against one secret. Expired, malformed and
// wrongly-signed tokens all fail the same way; callers collapse them to 401.
func (s *jwtService) verify(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, errors.New("token has no subject")
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject in token")
	}

	return subjectID, nil
}
