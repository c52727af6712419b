package handler

import (
	"net/http"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/export"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/labstack/echo/v4"
)

type BookmarkHandler struct {
	svc service.BookmarkService
	loc *time.Location
	now func() time.Time
}

func NewBookmarkHandler(svc service.BookmarkService, loc *time.Location) *BookmarkHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookmarkHandler{svc: svc, loc: loc, now: time.Now}
}

func (h *BookmarkHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.ListBookmarks)
	g.GET("/bookmarks/calendar.ics", h.ExportCalendar)
	g.DELETE("/bookmarks/:id", h.RemoveBookmark)
}

func (h *BookmarkHandler) ToggleBookmark(c echo.Context) error {
	id := c.Param("id")
	bookmarked, err := h.svc.ToggleBookmark(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	msg := "Removed from bookmarks"
	if bookmarked {
		msg = "Added to bookmarks"
	}
	return c.JSON(http.StatusOK, dto.ToggleResponse{ID: id, Enabled: bookmarked, Message: msg})
}

func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	bookmarks, err := h.svc.ListBookmarks(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		resp[i] = dto.ToBookmarkResponse(&bookmarks[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookmarkHandler) RemoveBookmark(c echo.Context) error {
	if err := h.svc.RemoveBookmark(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportCalendar uses the bookmark snapshots, not the live catalog.
func (h *BookmarkHandler) ExportCalendar(c echo.Context) error {
	bookmarks, err := h.svc.ListBookmarks(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	events := make([]models.Event, len(bookmarks))
	for i, b := range bookmarks {
		events[i] = b.Event
	}
	return attachCalendar(c, "bookmarked-events.ics", export.Calendar(events, h.loc, h.now()))
}
