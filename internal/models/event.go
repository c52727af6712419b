package models

type Category string

const (
	CategoryAll       Category = "All"
	CategoryTechnical Category = "Technical"
	CategoryCultural  Category = "Cultural"
	CategorySports    Category = "Sports"
	CategoryWorkshop  Category = "Workshop"
)

// Categories lists the known categories in display order, without the All selector.
var Categories = []Category{CategoryTechnical, CategoryCultural, CategorySports, CategoryWorkshop}

var categoryBadges = map[Category]string{
	CategoryTechnical: "primary",
	CategoryCultural:  "secondary",
	CategorySports:    "accent",
	CategoryWorkshop:  "muted",
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	_, ok := categoryBadges[c]
	return ok
}

// Badge returns the display treatment for c; unmapped categories get "default".
func (c Category) Badge() string {
	if b, ok := categoryBadges[c]; ok {
		return b
	}
	return "default"
}

type Event struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Date        string   `yaml:"date" json:"date"`
	Time        string   `yaml:"time" json:"time"`
	Venue       string   `yaml:"venue" json:"venue"`
	Category    Category `yaml:"category" json:"category"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	Attendees   int      `yaml:"attendees,omitempty" json:"attendees,omitempty"`
}
