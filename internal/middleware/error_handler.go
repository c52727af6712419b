package middleware

import (
	"errors"
	"net/http"

	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/validation"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	resp := dto.ErrorResponse{Message: err.Error()}

	var he *echo.HTTPError
	var verrs validation.Errors
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			resp.Message = m
		}
		if errors.As(he.Internal, &verrs) {
			resp.Errors = verrs
		}
	case errors.As(err, &verrs):
		code = http.StatusUnprocessableEntity
		resp.Message = "validation failed"
		resp.Errors = verrs
	}

	if code >= http.StatusInternalServerError {
		log.WithError(err).WithField("uri", c.Request().RequestURI).Error("request failed")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}
