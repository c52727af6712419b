package filter

import (
	"strings"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
)

// Filter returns the events matching both the category selector and the free-text query,
// in their original order. An empty or "All" category and an empty query match everything.
func Filter(events []models.Event, category models.Category, query string) []models.Event {
	q := strings.ToLower(query)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if matchesCategory(e, category) && matchesQuery(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matchesCategory(e models.Event, category models.Category) bool {
	return category == "" || category == models.CategoryAll || e.Category == category
}

// q must already be lower-cased.
func matchesQuery(e models.Event, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}
