package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "solhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService verifies any token of the form "token:<uuid>".
type stubTokenService struct{}

func (s *stubTokenService) IssueAccess(subjectID uuid.UUID) (string, error) {
	return "token:" + subjectID.String(), nil
}

func (s *stubTokenService) IssueRefresh(subjectID uuid.UUID) (string, error) {
	return "refresh:" + subjectID.String(), nil
}

func (s *stubTokenService) VerifyAccess(token string) (uuid.UUID, error) {
	if len(token) < 7 || token[:6] != "token:" {
		return uuid.Nil, errors.New("invalid token")
	}

	return uuid.Parse(token[6:])
}

func (s *stubTokenService) VerifyRefresh(token string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not used")
}

func (s *stubTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func performRequest(t *testing.T, handler echo.HandlerFunc, authHeader string, pathParam, paramValue string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames(pathParam)
		c.SetParamValues(paramValue)
	}

	require.NoError(t, handler(c))

	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	subject := uuid.New()

	var gotSubject uuid.UUID
	handler := m.Authenticate(func(c echo.Context) error {
		id, ok := deliverycontext.GetSubjectID(c)
		require.True(t, ok)
		gotSubject = id

		return c.String(http.StatusOK, "ok")
	})

	rec := performRequest(t, handler, "Bearer token:"+subject.String(), "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, gotSubject)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	handler := m.Authenticate(okHandler)

	rec := performRequest(t, handler, "", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	handler := m.Authenticate(okHandler)

	rec := performRequest(t, handler, "Basic dXNlcjpwYXNz", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	handler := m.Authenticate(okHandler)

	rec := performRequest(t, handler, "Bearer garbage", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSubjectParam_Match(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	subject := uuid.New()

	handler := m.Authenticate(m.RequireSubjectParam("id")(okHandler))

	rec := performRequest(t, handler, "Bearer token:"+subject.String(), "id", subject.String())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSubjectParam_MismatchIsUnauthorized(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	subject := uuid.New()
	other := uuid.New()

	handler := m.Authenticate(m.RequireSubjectParam("id")(okHandler))

	// A valid token for a different identity must not reach the handler.
	rec := performRequest(t, handler, "Bearer token:"+subject.String(), "id", other.String())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSubjectParam_MalformedParam(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})
	subject := uuid.New()

	handler := m.Authenticate(m.RequireSubjectParam("id")(okHandler))

	rec := performRequest(t, handler, "Bearer token:"+subject.String(), "id", "not-a-uuid")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSubjectParam_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	handler := m.RequireSubjectParam("id")(okHandler)

	rec := performRequest(t, handler, "", "id", uuid.New().String())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
