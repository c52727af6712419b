package export

import (
	"strings"
	"testing"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_ExportsAllSeedEvents(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	out := Calendar(c.List(), time.UTC, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	parsed, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, parsed.Events(), 6)

	first := parsed.Events()[0]
	assert.Equal(t, "AI & Machine Learning Bootcamp", first.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Contains(t, first.GetProperty(ics.ComponentPropertyLocation).Value, "Computer Science Lab")
	assert.Equal(t, "20240315", first.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20240318", first.GetProperty(ics.ComponentPropertyDtEnd).Value)
}

func TestCalendar_SkipsUnparsableDates(t *testing.T) {
	events := []models.Event{
		{ID: "a", Title: "Dated", Date: "April 18, 2024"},
		{ID: "b", Title: "TBA", Date: "to be announced"},
	}
	out := Calendar(events, time.UTC, time.Now())

	assert.Contains(t, out, "SUMMARY:Dated")
	assert.NotContains(t, out, "SUMMARY:TBA")
	assert.Contains(t, out, "PRODID:"+ProductID)
}
