package middleware

import (
	"strings"

	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/delivery/http/response"
	"solhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and the strict
// subject check used on act-as-yourself routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and puts the subject id on
// the context. It never touches the database; whether the subject still
// exists is the ownership layer's problem.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		subjectID, err := m.tokenSvc.VerifyAccess(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetSubjectID(c, subjectID)

		return next(c)
	}
}

// RequireSubjectParam is a middleware factory enforcing that the named path
// parameter equals the authenticated subject id. A mismatch is a 401, not a
// 403: the caller simply is not the identity the route speaks for.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSubjectParam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subjectID, ok := deliverycontext.GetSubjectID(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			paramID, err := uuid.Parse(c.Param(param))
			if err != nil || paramID != subjectID {
				return response.Unauthorized(c, "UNAUTHORIZED", "Token subject does not match the requested identity")
			}

			return next(c)
		}
	}
}
