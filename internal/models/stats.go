package models

type EventStats struct {
	Rank          int      `json:"rank"`
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Date          string   `json:"date"`
	Attendees     int      `json:"attendees"`
	Registrations int      `json:"registrations"`
	Total         int      `json:"total"`
}
