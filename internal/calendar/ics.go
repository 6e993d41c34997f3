package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

const (
	ContentType = "text/calendar"
	FileName    = "my_schedule.ics"
	ProductID   = "-//meeting-scheduler//EN"
)

var uidNamespace = uuid.MustParse("6f1c2a8e-5d3b-4c1e-9a77-2b0f3c6d8e41")

// Export renders bookings as an iCalendar document, one VEVENT each.
// stamp becomes every event's DTSTAMP.
func Export(bookings []domain.Booking, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for _, b := range bookings {
		ev := cal.AddEvent(EventUID(b))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(b.Start)
		ev.SetEndAt(b.End)
		ev.SetSummary(b.Title)
		ev.SetDescription(b.Notes)
		if b.Email != "" {
			ev.AddAttendee("mailto:" + b.Email)
		}
	}

	return cal.Serialize()
}

// EventUID is stable for a booking so re-imports update instead of
// duplicating.
func EventUID(b domain.Booking) string {
	key := b.Start.UTC().Format(domain.TimestampLayout) + "|" + b.Email
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@meeting-scheduler"
}
