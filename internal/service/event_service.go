package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/eventdate"
	"github.com/MayuriC-eng/CampusConnect/internal/filter"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/repository"
)

var ErrEventNotFound = errors.New("event not found")

type EventService interface {
	ListEvents(ctx context.Context, category models.Category, query string) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	EventsOn(ctx context.Context, day time.Time) ([]models.Event, error)
	Leaderboard(ctx context.Context) ([]models.EventStats, error)
}

type eventService struct {
	repo          repository.EventRepository
	registrations repository.RegistrationRepository
	loc           *time.Location
}

func NewEventService(repo repository.EventRepository, registrations repository.RegistrationRepository, loc *time.Location) EventService {
	if loc == nil {
		loc = time.Local
	}
	return &eventService{repo: repo, registrations: registrations, loc: loc}
}

func (s *eventService) ListEvents(ctx context.Context, category models.Category, query string) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return filter.Filter(events, category, query), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// EventsOn returns the events whose date range covers day. Events with unparsable dates never match.
func (s *eventService) EventsOn(ctx context.Context, day time.Time) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]models.Event, 0)
	for _, e := range events {
		r, err := eventdate.Parse(e.Date, s.loc)
		if err != nil {
			continue
		}
		if r.Contains(day.In(s.loc)) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Leaderboard ranks events by seeded attendees plus registrations stored locally.
// Ties keep catalog order.
func (s *eventService) Leaderboard(ctx context.Context) ([]models.EventStats, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	counts := make(map[string]int)
	if s.registrations != nil {
		for _, r := range s.registrations.Load(ctx) {
			counts[r.EventID]++
		}
	}

	stats := make([]models.EventStats, len(events))
	for i, e := range events {
		stats[i] = models.EventStats{
			ID:            e.ID,
			Title:         e.Title,
			Category:      e.Category,
			Date:          e.Date,
			Attendees:     e.Attendees,
			Registrations: counts[e.ID],
			Total:         e.Attendees + counts[e.ID],
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	for i := range stats {
		stats[i].Rank = i + 1
	}
	return stats, nil
}
