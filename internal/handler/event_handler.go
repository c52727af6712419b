package handler

import (
	"net/http"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/display"
	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/eventdate"
	"github.com/MayuriC-eng/CampusConnect/internal/export"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	dayLayout   = "2006-01-02"
	mimeICS     = "text/calendar; charset=utf-8"
	icsFilename = "campus-events.ics"
)

type EventHandler struct {
	events    service.EventService
	bookmarks service.BookmarkService
	loc       *time.Location
	now       func() time.Time
}

func NewEventHandler(events service.EventService, bookmarks service.BookmarkService, loc *time.Location) *EventHandler {
	if loc == nil {
		loc = time.Local
	}
	return &EventHandler{events: events, bookmarks: bookmarks, loc: loc, now: time.Now}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.GET("/calendar", h.Calendar)
	g.GET("/calendar.ics", h.ExportCalendar)
	g.GET("/leaderboard", h.Leaderboard)
	g.GET("/:id", h.GetEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	category := models.Category(c.QueryParam("category"))
	events, err := h.events.ListEvents(c.Request().Context(), category, c.QueryParam("q"))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()
	event, err := h.events.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	resp := dto.EventDetailResponse{
		EventResponse: dto.ToEventResponse(event),
		Bookmarked:    h.bookmarks.IsBookmarked(ctx, event.ID),
	}
	if r, err := eventdate.Parse(event.Date, h.loc); err == nil {
		resp.Countdown = display.Remaining(r.Start, h.now()).String()
	}
	return c.JSON(http.StatusOK, resp)
}

// Calendar lists events running on ?date=YYYY-MM-DD, today when omitted.
func (h *EventHandler) Calendar(c echo.Context) error {
	day := h.now().In(h.loc)
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, h.loc)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}
		day = parsed
	}

	events, err := h.events.EventsOn(c.Request().Context(), day)
	if err != nil {
		return toHTTPError(err)
	}
	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Leaderboard(c echo.Context) error {
	stats, err := h.events.Leaderboard(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *EventHandler) ExportCalendar(c echo.Context) error {
	events, err := h.events.ListEvents(c.Request().Context(), models.CategoryAll, "")
	if err != nil {
		return toHTTPError(err)
	}
	return attachCalendar(c, icsFilename, export.Calendar(events, h.loc, h.now()))
}

func attachCalendar(c echo.Context, filename, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, mimeICS, []byte(body))
}
