package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/repository"
	"github.com/MayuriC-eng/CampusConnect/internal/store"
	"github.com/stretchr/testify/require"
)

// --- Mock Notifier ---

type notification struct {
	topic   string
	payload any
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []notification
	err  error
}

func (m *mockNotifier) Notify(_ context.Context, routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, notification{topic: routingKey, payload: payload})
	return m.err
}

func (m *mockNotifier) topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, n := range m.sent {
		out[i] = n.topic
	}
	return out
}

// --- Fixtures ---

type fixture struct {
	kv            *store.MemoryKV
	events        repository.EventRepository
	registrations repository.RegistrationRepository
	bookmarks     repository.BookmarkRepository
	notifier      *mockNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	kv := store.NewMemoryKV()
	return &fixture{
		kv:            kv,
		events:        repository.NewEventRepository(c),
		registrations: repository.NewRegistrationRepository(kv),
		bookmarks:     repository.NewBookmarkRepository(kv),
		notifier:      &mockNotifier{},
	}
}
