package service

import (
	"context"
	"testing"

	"github.com/MayuriC-eng/CampusConnect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_DefaultsToLight(t *testing.T) {
	svc := NewPreferenceService(store.NewMemoryKV())
	assert.Equal(t, ThemeLight, svc.Theme(context.Background()))
}

func TestSetTheme(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := NewPreferenceService(kv)
	ctx := context.Background()

	require.NoError(t, svc.SetTheme(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, svc.Theme(ctx))

	v, err := kv.Get(ctx, store.Theme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestSetTheme_Invalid(t *testing.T) {
	svc := NewPreferenceService(store.NewMemoryKV())
	assert.ErrorIs(t, svc.SetTheme(context.Background(), "solarized"), ErrInvalidTheme)
}

func TestTheme_GarbageStoredValue(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), store.Theme, "purple"))
	assert.Equal(t, ThemeLight, NewPreferenceService(kv).Theme(context.Background()))
}
