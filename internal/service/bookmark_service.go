package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/repository"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, eventID string) (bool, error)
	IsBookmarked(ctx context.Context, eventID string) bool
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	RemoveBookmark(ctx context.Context, eventID string) error
}

type bookmarkService struct {
	repo     repository.BookmarkRepository
	events   repository.EventRepository
	notifier Notifier
	now      func() time.Time
}

func NewBookmarkService(repo repository.BookmarkRepository, events repository.EventRepository, notifier Notifier) BookmarkService {
	return &bookmarkService{repo: repo, events: events, notifier: notifier, now: time.Now}
}

// ToggleBookmark removes the bookmark for eventID if one exists, otherwise stores a snapshot
// of the event. It returns whether the event is bookmarked afterwards.
func (s *bookmarkService) ToggleBookmark(ctx context.Context, eventID string) (bool, error) {
	event, ok := s.events.FindByID(ctx, eventID)
	if !ok {
		return false, ErrEventNotFound
	}

	var on bool
	err := s.repo.Mutate(ctx, func(bookmarks []models.Bookmark) ([]models.Bookmark, error) {
		kept := bookmarks[:0]
		for _, b := range bookmarks {
			if b.ID != event.ID {
				kept = append(kept, b)
			}
		}
		if len(kept) < len(bookmarks) {
			on = false
			return kept, nil
		}
		on = true
		return append(bookmarks, models.Bookmark{Event: *event, BookmarkedAt: s.now().UTC()}), nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle bookmark: %w", err)
	}

	if on {
		notify(ctx, s.notifier, TopicBookmarkAdded, map[string]string{"id": event.ID})
	} else {
		notify(ctx, s.notifier, TopicBookmarkRemoved, map[string]string{"id": event.ID})
	}
	return on, nil
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, eventID string) bool {
	for _, b := range s.repo.Load(ctx) {
		if b.ID == eventID {
			return true
		}
	}
	return false
}

func (s *bookmarkService) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return s.repo.Load(ctx), nil
}

// RemoveBookmark does not consult the catalog: bookmarks are snapshots and may outlive their event.
func (s *bookmarkService) RemoveBookmark(ctx context.Context, eventID string) error {
	n, err := s.repo.RemoveWhere(ctx, func(b models.Bookmark) bool { return b.ID == eventID })
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	if n == 0 {
		return ErrBookmarkNotFound
	}
	notify(ctx, s.notifier, TopicBookmarkRemoved, map[string]string{"id": eventID})
	return nil
}
