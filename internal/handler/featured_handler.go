package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MayuriC-eng/CampusConnect/internal/display"
	"github.com/MayuriC-eng/CampusConnect/internal/dto"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/labstack/echo/v4"
)

// FeaturedCount is how many leading catalog events the home carousel shows.
const FeaturedCount = 4

type FeaturedResponse struct {
	display.CarouselState
	Event  dto.EventResponse   `json:"event"`
	Slides []dto.EventResponse `json:"slides"`
}

type FeaturedHandler struct {
	carousel *display.Carousel
	slides   []models.Event
}

// NewFeaturedHandler takes the slides in display order; the carousel must be sized to match.
func NewFeaturedHandler(carousel *display.Carousel, slides []models.Event) *FeaturedHandler {
	return &FeaturedHandler{carousel: carousel, slides: slides}
}

// FeaturedSlides picks the carousel slides from the catalog listing.
func FeaturedSlides(events []models.Event) []models.Event {
	if len(events) > FeaturedCount {
		events = events[:FeaturedCount]
	}
	out := make([]models.Event, len(events))
	copy(out, events)
	return out
}

func (h *FeaturedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.State)
	g.POST("/next", h.Next)
	g.POST("/prev", h.Prev)
	g.POST("/select/:index", h.Select)
}

func (h *FeaturedHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.response())
}

func (h *FeaturedHandler) Next(c echo.Context) error {
	h.carousel.Next()
	return c.JSON(http.StatusOK, h.response())
}

func (h *FeaturedHandler) Prev(c echo.Context) error {
	h.carousel.Prev()
	return c.JSON(http.StatusOK, h.response())
}

func (h *FeaturedHandler) Select(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid index")
	}
	if err := h.carousel.Select(index); err != nil {
		if errors.Is(err, display.ErrSlideOutOfRange) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, h.response())
}

func (h *FeaturedHandler) response() FeaturedResponse {
	state := h.carousel.State()
	resp := FeaturedResponse{
		CarouselState: state,
		Slides:        make([]dto.EventResponse, len(h.slides)),
	}
	for i := range h.slides {
		resp.Slides[i] = dto.ToEventResponse(&h.slides[i])
	}
	if state.Index < len(h.slides) {
		resp.Event = resp.Slides[state.Index]
	}
	return resp
}
