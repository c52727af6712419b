// Package export renders catalog events as an iCalendar feed.
package export

import (
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/eventdate"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	ics "github.com/arran4/golang-ical"
	log "github.com/sirupsen/logrus"
)

const ProductID = "-//CampusConnect//Events//EN"

// Calendar builds an all-day VEVENT per event. Events whose date text cannot be
// interpreted are left out.
func Calendar(events []models.Event, loc *time.Location, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for _, e := range events {
		r, err := eventdate.Parse(e.Date, loc)
		if err != nil {
			log.WithField("event", e.ID).Debugf("skipping calendar export: %v", err)
			continue
		}
		ev := cal.AddEvent("campus-event-" + e.ID + "@campusconnect")
		ev.SetDtStampTime(stamp.UTC())
		ev.SetAllDayStartAt(r.Start)
		// DTEND of an all-day event is exclusive.
		ev.SetAllDayEndAt(r.End.AddDate(0, 0, 1))
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Description + "\n" + e.Time)
		ev.SetLocation(e.Venue)
		ev.AddProperty(ics.ComponentPropertyCategories, string(e.Category))
	}
	return cal.Serialize()
}
