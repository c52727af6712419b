package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Collection is an ordered list of records serialized as one JSON array under key.
// Every mutation is a full read-modify-write of the array. Mutations through the same
// Collection are serialized; separate processes sharing the medium are last-write-wins.
type Collection[T any] struct {
	mu  sync.Mutex
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Load never fails: a missing or unparsable value reads as an empty collection.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.WithError(err).WithField("key", c.key).Warn("[Store] read failed, using empty collection")
		}
		return []T{}
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.WithError(err).WithField("key", c.key).Warn("[Store] corrupt collection, using empty collection")
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, records)
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Mutate loads the collection, applies fn and saves the result. Nothing is written when fn fails.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := fn(c.Load(ctx))
	if err != nil {
		return err
	}
	return c.save(ctx, records)
}

func (c *Collection[T]) Append(ctx context.Context, record T) error {
	return c.Mutate(ctx, func(records []T) ([]T, error) {
		return append(records, record), nil
	})
}

func (c *Collection[T]) RemoveAt(ctx context.Context, index int) error {
	return c.Mutate(ctx, func(records []T) ([]T, error) {
		if index < 0 || index >= len(records) {
			return nil, fmt.Errorf("remove %s[%d]: %w", c.key, index, ErrIndexOutOfRange)
		}
		return append(records[:index], records[index+1:]...), nil
	})
}

// RemoveWhere drops every record matching pred and reports how many were removed.
func (c *Collection[T]) RemoveWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	err := c.Mutate(ctx, func(records []T) ([]T, error) {
		kept := records[:0]
		for _, r := range records {
			if pred(r) {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (c *Collection[T]) UpdateAt(ctx context.Context, index int, mutate func(*T)) error {
	return c.Mutate(ctx, func(records []T) ([]T, error) {
		if index < 0 || index >= len(records) {
			return nil, fmt.Errorf("update %s[%d]: %w", c.key, index, ErrIndexOutOfRange)
		}
		mutate(&records[index])
		return records, nil
	})
}

// UpdateWhere applies mutate to every record matching pred and reports how many were updated.
func (c *Collection[T]) UpdateWhere(ctx context.Context, pred func(T) bool, mutate func(*T)) (int, error) {
	updated := 0
	err := c.Mutate(ctx, func(records []T) ([]T, error) {
		for i := range records {
			if pred(records[i]) {
				mutate(&records[i])
				updated++
			}
		}
		return records, nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
