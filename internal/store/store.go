// Package store is the persistence layer: a durable key -> string medium (KV) and
// typed record collections stored as whole JSON blobs under a single key each.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MayuriC-eng/CampusConnect/pkg/database"
)

// Logical keys of the medium.
const (
	RegisteredEvents = "registeredEvents"
	BookmarkedEvents = "bookmarkedEvents"
	Theme            = "theme"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidKey      = errors.New("invalid key")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// KV is a durable key -> string mapping. Set overwrites the whole value of one key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Config struct {
	Driver      string
	DataDir     string
	SQLitePath  string
	PostgresDSN string
}

// New opens the KV backend selected by config.Driver.
func New(config Config) (KV, error) {
	switch config.Driver {
	case DriverMemory, "":
		return NewMemoryKV(), nil
	case DriverFile:
		return NewFileKV(config.DataDir)
	case DriverSQLite:
		db, err := database.NewSQLiteDB(config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite %s: %w", config.SQLitePath, err)
		}
		return NewSQLKV(db), nil
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		db, err := database.NewPostgresDB(ctx, config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return NewGormKV(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Driver)
	}
}
