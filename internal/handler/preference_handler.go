package handler

import (
	"net/http"

	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/labstack/echo/v4"
)

type PreferenceHandler struct {
	svc service.PreferenceService
}

func NewPreferenceHandler(svc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

func (h *PreferenceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/theme", h.GetTheme)
	g.PUT("/theme", h.SetTheme)
}

func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ThemeResponse{Theme: h.svc.Theme(c.Request().Context())})
}

func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req dto.ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ThemeResponse{Theme: req.Theme})
}
