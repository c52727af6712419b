package repository

import (
	"context"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/store"
)

// RecordRepository is the read-modify-write surface of one persisted collection.
// *store.Collection implements it.
type RecordRepository[T any] interface {
	Load(ctx context.Context) []T
	Save(ctx context.Context, records []T) error
	Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error
	Append(ctx context.Context, record T) error
	RemoveAt(ctx context.Context, index int) error
	RemoveWhere(ctx context.Context, pred func(T) bool) (int, error)
	UpdateAt(ctx context.Context, index int, mutate func(*T)) error
	UpdateWhere(ctx context.Context, pred func(T) bool, mutate func(*T)) (int, error)
}

type (
	RegistrationRepository = RecordRepository[models.Registration]
	BookmarkRepository     = RecordRepository[models.Bookmark]
)

func NewRegistrationRepository(kv store.KV) RegistrationRepository {
	return store.NewCollection[models.Registration](kv, store.RegisteredEvents)
}

func NewBookmarkRepository(kv store.KV) BookmarkRepository {
	return store.NewCollection[models.Bookmark](kv, store.BookmarkedEvents)
}
