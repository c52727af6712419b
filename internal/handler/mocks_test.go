package handler

import (
	"context"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
)

// --- Mock EventService ---

type mockEventService struct {
	listFn        func(ctx context.Context, category models.Category, query string) ([]models.Event, error)
	getFn         func(ctx context.Context, id string) (*models.Event, error)
	onFn          func(ctx context.Context, day time.Time) ([]models.Event, error)
	leaderboardFn func(ctx context.Context) ([]models.EventStats, error)
}

func (m *mockEventService) ListEvents(ctx context.Context, category models.Category, query string) ([]models.Event, error) {
	return m.listFn(ctx, category, query)
}
func (m *mockEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) EventsOn(ctx context.Context, day time.Time) ([]models.Event, error) {
	return m.onFn(ctx, day)
}
func (m *mockEventService) Leaderboard(ctx context.Context) ([]models.EventStats, error) {
	return m.leaderboardFn(ctx)
}

// --- Mock RegistrationService ---

type mockRegistrationService struct {
	registerFn         func(ctx context.Context, eventID string, form models.RegistrationData) (*models.Registration, *models.Confirmation, error)
	listFn             func(ctx context.Context) ([]models.Registration, error)
	getFn              func(ctx context.Context, id string) (*models.Registration, error)
	unregisterFn       func(ctx context.Context, id string) error
	unregisterAtFn     func(ctx context.Context, index int) error
	toggleReminderFn   func(ctx context.Context, id string) (bool, error)
	toggleReminderAtFn func(ctx context.Context, index int) (bool, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, eventID string, form models.RegistrationData) (*models.Registration, *models.Confirmation, error) {
	return m.registerFn(ctx, eventID, form)
}
func (m *mockRegistrationService) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return m.listFn(ctx)
}
func (m *mockRegistrationService) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	return m.getFn(ctx, id)
}
func (m *mockRegistrationService) Unregister(ctx context.Context, id string) error {
	return m.unregisterFn(ctx, id)
}
func (m *mockRegistrationService) UnregisterAt(ctx context.Context, index int) error {
	return m.unregisterAtFn(ctx, index)
}
func (m *mockRegistrationService) ToggleReminder(ctx context.Context, id string) (bool, error) {
	return m.toggleReminderFn(ctx, id)
}
func (m *mockRegistrationService) ToggleReminderAt(ctx context.Context, index int) (bool, error) {
	return m.toggleReminderAtFn(ctx, index)
}

// --- Mock BookmarkService ---

type mockBookmarkService struct {
	toggleFn       func(ctx context.Context, eventID string) (bool, error)
	isBookmarkedFn func(ctx context.Context, eventID string) bool
	listFn         func(ctx context.Context) ([]models.Bookmark, error)
	removeFn       func(ctx context.Context, eventID string) error
}

func (m *mockBookmarkService) ToggleBookmark(ctx context.Context, eventID string) (bool, error) {
	return m.toggleFn(ctx, eventID)
}
func (m *mockBookmarkService) IsBookmarked(ctx context.Context, eventID string) bool {
	return m.isBookmarkedFn(ctx, eventID)
}
func (m *mockBookmarkService) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return m.listFn(ctx)
}
func (m *mockBookmarkService) RemoveBookmark(ctx context.Context, eventID string) error {
	return m.removeFn(ctx, eventID)
}

// --- Mock PreferenceService ---

type mockPreferenceService struct {
	theme    string
	setErr   error
	setCalls []string
}

func (m *mockPreferenceService) Theme(ctx context.Context) string { return m.theme }
func (m *mockPreferenceService) SetTheme(ctx context.Context, theme string) error {
	m.setCalls = append(m.setCalls, theme)
	return m.setErr
}

var hackathon = models.Event{
	ID:          "2",
	Title:       "Hackathon 2024",
	Description: "24-hour coding marathon",
	Date:        "March 20-21, 2024",
	Time:        "9:00 AM",
	Venue:       "Innovation Hub",
	Category:    models.CategoryTechnical,
	Attendees:   300,
}
