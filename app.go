package main

import (
	"net/http"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/display"
	"github.com/MayuriC-eng/CampusConnect/internal/handler"
	"github.com/MayuriC-eng/CampusConnect/internal/middleware"
	"github.com/MayuriC-eng/CampusConnect/internal/repository"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/MayuriC-eng/CampusConnect/internal/store"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type app struct {
	echo     *echo.Echo
	carousel *display.Carousel
}

// newApp wires repositories, services and routes. The caller owns kv and notifier.
func newApp(events *catalog.Catalog, kv store.KV, notifier service.Notifier, loc *time.Location) *app {
	eventRepo := repository.NewEventRepository(events)
	registrationRepo := repository.NewRegistrationRepository(kv)
	bookmarkRepo := repository.NewBookmarkRepository(kv)

	eventSvc := service.NewEventService(eventRepo, registrationRepo, loc)
	registrationSvc := service.NewRegistrationService(registrationRepo, eventRepo, notifier)
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, eventRepo, notifier)
	preferenceSvc := service.NewPreferenceService(kv)

	slides := handler.FeaturedSlides(events.List())
	carousel := display.NewCarousel(len(slides))

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "campusconnect"})
	})

	api := e.Group("/api/v1")
	handler.NewEventHandler(eventSvc, bookmarkSvc, loc).RegisterRoutes(api.Group("/events"))
	handler.NewRegistrationHandler(registrationSvc).RegisterRoutes(api)
	handler.NewBookmarkHandler(bookmarkSvc, loc).RegisterRoutes(api)
	handler.NewFeaturedHandler(carousel, slides).RegisterRoutes(api.Group("/featured"))
	handler.NewPreferenceHandler(preferenceSvc).RegisterRoutes(api.Group("/preferences"))

	return &app{echo: e, carousel: carousel}
}
