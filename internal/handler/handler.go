// Package handler contains the HTTP layer: request DTOs, validation and
// error mapping around the services.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"taralog/internal/auth"
	apperrors "taralog/internal/errors"
)

// fail converts a domain error into the echo error carrying the
// standardized response body. Raw causes never reach the client.
func fail(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// currentClaims extracts the authenticated user's claims set by echo-jwt.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
