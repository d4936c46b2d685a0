// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"turriva/internal/delivery/http/response"
	"turriva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// sessionID extracts the session id path parameter.
func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse session id")
	}

	return id, nil
}

// language extracts the content language from the lang query parameter.
// Use cases treat an invalid language as the default.
func language(c echo.Context) entity.Language {
	return entity.Language(c.QueryParam("lang"))
}

// int64Param extracts a numeric path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse "+name)
	}

	return value, nil
}
