package repository

import (
	"context"

	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
)

// EventRepository is read-only: the catalog is fixed at process start.
type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, bool)
}

type eventRepository struct {
	catalog *catalog.Catalog
}

func NewEventRepository(c *catalog.Catalog) EventRepository {
	return &eventRepository{catalog: c}
}

func (r *eventRepository) FindAll(_ context.Context) ([]models.Event, error) {
	return r.catalog.List(), nil
}

func (r *eventRepository) FindByID(_ context.Context, id string) (*models.Event, bool) {
	e, ok := r.catalog.Find(id)
	if !ok {
		return nil, false
	}
	return &e, true
}
