// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a uuid path parameter. An empty or malformed value is a
// client error, not an ownership failure.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" path parameter")
	}

	return id, nil
}

// subjectID reads the subject placed in context by the auth middleware.
func subjectID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetSubjectID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated subject")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
