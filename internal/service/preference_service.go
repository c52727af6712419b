package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MayuriC-eng/CampusConnect/internal/store"
	log "github.com/sirupsen/logrus"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New(`theme must be "light" or "dark"`)

type PreferenceService interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
}

type preferenceService struct {
	kv store.KV
}

func NewPreferenceService(kv store.KV) PreferenceService {
	return &preferenceService{kv: kv}
}

// Theme falls back to light when nothing valid is stored.
func (s *preferenceService) Theme(ctx context.Context) string {
	v, err := s.kv.Get(ctx, store.Theme)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.WithError(err).Warn("[Store] failed to read theme")
		}
		return ThemeLight
	}
	if v != ThemeLight && v != ThemeDark {
		return ThemeLight
	}
	return v
}

func (s *preferenceService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	if err := s.kv.Set(ctx, store.Theme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
