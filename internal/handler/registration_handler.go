package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/registrations", h.Register)
	g.POST("/events/:id/registrations", h.Register)
	g.GET("/registrations", h.ListRegistrations)
	g.DELETE("/registrations/:id", h.Unregister)
	g.POST("/registrations/:id/reminder", h.ToggleReminder)
	g.GET("/registrations/:id/qr", h.QRCode)
	g.DELETE("/registrations/index/:index", h.UnregisterAt)
	g.POST("/registrations/index/:index/reminder", h.ToggleReminderAt)
}

// Register serves both the per-event route and the general one, where :id is absent.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reg, confirmation, err := h.svc.Register(c.Request().Context(), c.Param("id"), req.ToModel())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:      fmt.Sprintf("Registered for %s", reg.EventName),
		Registration: dto.ToRegistrationResponse(reg),
		Confirmation: *confirmation,
		QRCode:       reg.QRCode,
	})
}

func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	regs, err := h.svc.ListRegistrations(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RegistrationResponse, len(regs))
	for i := range regs {
		resp[i] = dto.ToRegistrationResponse(&regs[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RegistrationHandler) Unregister(c echo.Context) error {
	if err := h.svc.Unregister(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RegistrationHandler) UnregisterAt(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid index")
	}
	if err := h.svc.UnregisterAt(c.Request().Context(), index); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RegistrationHandler) ToggleReminder(c echo.Context) error {
	id := c.Param("id")
	enabled, err := h.svc.ToggleReminder(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reminderResponse(id, enabled))
}

func (h *RegistrationHandler) ToggleReminderAt(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid index")
	}
	enabled, err := h.svc.ToggleReminderAt(c.Request().Context(), index)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reminderResponse(c.Param("index"), enabled))
}

// QRCode renders the stored confirmation payload as a PNG.
func (h *RegistrationHandler) QRCode(c echo.Context) error {
	reg, err := h.svc.GetRegistration(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if reg.QRCode == "" {
		return echo.NewHTTPError(http.StatusNotFound, "registration has no confirmation code")
	}

	png, err := qrcode.Encode(reg.QRCode, qrcode.Medium, qrSize)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func reminderResponse(id string, enabled bool) dto.ToggleResponse {
	msg := "Reminder removed"
	if enabled {
		msg = "Reminder set"
	}
	return dto.ToggleResponse{ID: id, Enabled: enabled, Message: msg}
}
