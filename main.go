package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MayuriC-eng/CampusConnect/config"
	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/logger"
	"github.com/MayuriC-eng/CampusConnect/internal/service"
	"github.com/MayuriC-eng/CampusConnect/internal/store"
	"github.com/MayuriC-eng/CampusConnect/pkg/rabbitmq"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	if err := logger.PrepareLogger(logger.Config{Level: cfg.LogLevel}); err != nil {
		log.Fatalf("failed to prepare logger: %v", err)
	}

	events, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load event catalog: %v", err)
	}
	log.Infof("[Catalog] %d events loaded", events.Len())

	kv, err := store.New(store.Config{
		Driver:      cfg.StoreDriver,
		DataDir:     cfg.DataDir,
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: cfg.DSN(),
	})
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.WithError(err).Error("[Store] close failed")
		}
	}()
	log.Infof("[Store] using %s backend", cfg.StoreDriver)

	var notifier service.Notifier
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
	} else {
		log.Info("[RabbitMQ] RABBITMQ_URL not set, notifications are only logged")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(events, kv, notifier, cfg.Location())
	go a.carousel.Run(ctx, cfg.CarouselInterval)

	go func() {
		log.Infof("CampusConnect starting on :%s", cfg.ServerPort)
		if err := a.echo.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
