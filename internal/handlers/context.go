package handlers

import (
	"errors"
	"net/http"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user id set by the JWT
// middleware; zero means unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// serviceHTTPError maps service-layer errors to echo HTTP errors
func serviceHTTPError(err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
