// Package catalog holds the read-only list of campus events.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var defaultEvents []byte

var (
	ErrEmptyID           = errors.New("event id is empty")
	ErrDuplicateID       = errors.New("duplicate event id")
	ErrNegativeAttendees = errors.New("attendees must not be negative")
	ErrReservedID        = errors.New("event id is reserved")
)

// reservedIDs are path segments served under /events that an id would collide with.
var reservedIDs = map[string]bool{
	"calendar":     true,
	"calendar.ics": true,
	"leaderboard":  true,
}

// Catalog is immutable after construction. Every accessor returns copies.
type Catalog struct {
	events []models.Event
	byID   map[string]int
}

func New(events []models.Event) (*Catalog, error) {
	c := &Catalog{
		events: make([]models.Event, 0, len(events)),
		byID:   make(map[string]int, len(events)),
	}
	for _, e := range events {
		if e.ID == "" {
			return nil, fmt.Errorf("event %q: %w", e.Title, ErrEmptyID)
		}
		if reservedIDs[e.ID] {
			return nil, fmt.Errorf("event %q: %w", e.ID, ErrReservedID)
		}
		if _, ok := c.byID[e.ID]; ok {
			return nil, fmt.Errorf("event %q: %w", e.ID, ErrDuplicateID)
		}
		if e.Attendees < 0 {
			return nil, fmt.Errorf("event %q: %w", e.ID, ErrNegativeAttendees)
		}
		c.byID[e.ID] = len(c.events)
		c.events = append(c.events, e)
	}
	return c, nil
}

// Load parses a YAML list of events.
func Load(r io.Reader) (*Catalog, error) {
	var events []models.Event
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&events); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(events)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultEvents))
}

func (c *Catalog) List() []models.Event {
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Catalog) Find(id string) (models.Event, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Event{}, false
	}
	return c.events[i], true
}

func (c *Catalog) Len() int {
	return len(c.events)
}
