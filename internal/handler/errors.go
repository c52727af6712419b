package handler

import (
	"errors"
	"net/http"

	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/MayuriC-eng/CampusConnect/internal/validation"
	"github.com/labstack/echo/v4"
)

// toHTTPError translates service errors; anything unknown becomes a 500.
func toHTTPError(err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "validation failed").SetInternal(verrs)
	case errors.Is(err, service.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrRegistrationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "registration not found")
	case errors.Is(err, service.ErrBookmarkNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "bookmark not found")
	case errors.Is(err, service.ErrInvalidTheme):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
}
