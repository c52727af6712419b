package models

import "time"

// Bookmark is a snapshot of an event taken when it was bookmarked.
type Bookmark struct {
	Event
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}
