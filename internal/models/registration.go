package models

import (
	"encoding/json"
	"time"
)

const (
	// GeneralEventID marks a registration made through the generic form.
	GeneralEventID   = "general"
	GeneralEventName = "Campus Event"
)

type RegistrationData struct {
	Name   string `json:"name" validate:"min=2"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"min=10"`
	Year   string `json:"year" validate:"required"`
	Branch string `json:"branch" validate:"min=2"`
}

type Registration struct {
	ID               string           `json:"id,omitempty"`
	EventID          string           `json:"eventId"`
	EventName        string           `json:"eventName"`
	RegistrationData RegistrationData `json:"registrationData"`
	QRCode           string           `json:"qrCode,omitempty"`
	Date             time.Time        `json:"date"`
	Reminder         bool             `json:"reminder"`
}

// Confirmation is the payload rendered as a scannable code after a successful registration.
type Confirmation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

func (c Confirmation) Encode() string {
	b, err := json.Marshal(c)
	if err != nil {
		// only plain strings and a time.Time; cannot fail
		return ""
	}
	return string(b)
}
