package dto

import (
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Category    string `json:"category"`
	Badge       string `json:"badge"`
	Image       string `json:"image,omitempty"`
	Attendees   int    `json:"attendees,omitempty"`
}

type EventDetailResponse struct {
	EventResponse
	Bookmarked bool   `json:"bookmarked"`
	Countdown  string `json:"countdown,omitempty"`
}

type RegistrationResponse struct {
	ID        string                  `json:"id"`
	EventID   string                  `json:"event_id"`
	EventName string                  `json:"event_name"`
	Data      models.RegistrationData `json:"registration_data"`
	Date      time.Time               `json:"date"`
	Reminder  bool                    `json:"reminder"`
}

type RegisterResponse struct {
	Message      string               `json:"message"`
	Registration RegistrationResponse `json:"registration"`
	Confirmation models.Confirmation  `json:"confirmation"`
	QRCode       string               `json:"qr_code"`
}

type BookmarkResponse struct {
	EventResponse
	BookmarkedAt time.Time `json:"bookmarked_at"`
}

type ToggleResponse struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue,
		Category:    string(e.Category),
		Badge:       e.Category.Badge(),
		Image:       e.Image,
		Attendees:   e.Attendees,
	}
}

func ToRegistrationResponse(r *models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		EventName: r.EventName,
		Data:      r.RegistrationData,
		Date:      r.Date,
		Reminder:  r.Reminder,
	}
}

func ToBookmarkResponse(b *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		EventResponse: ToEventResponse(&b.Event),
		BookmarkedAt:  b.BookmarkedAt,
	}
}
