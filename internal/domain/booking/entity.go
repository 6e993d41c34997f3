package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

const (
	SlotDuration = 30 * time.Minute

	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	TimestampLayout = "2006-01-02T15:04:05"
)

// Booking reserves one slot on one date. End and Title are derived from
// Start and the visitor's name and are never set independently.
type Booking struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Title string    `json:"title"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Notes string    `json:"notes"`
}

func TitleFor(name string) string {
	return fmt.Sprintf("Meeting with %s", name)
}

// New combines date and time-of-day in loc and derives End and Title.
func New(
	date time.Time,
	hm string,
	name string,
	email string,
	phone string,
	notes string,
	loc *time.Location,
) (Booking, error) {

	tod, err := ParseTimeOfDay(hm)
	if err != nil {
		return Booking{}, err
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		loc,
	)
	// Wall times skipped by a DST jump normalize to another hour.
	if start.Hour() != tod.Hour() || start.Minute() != tod.Minute() {
		return Booking{}, httperr.ErrBusiness("invalid_time")
	}

	return Booking{
		Start: start,
		End:   start.Add(SlotDuration),
		Title: TitleFor(name),
		Email: email,
		Phone: phone,
		Notes: notes,
	}, nil
}

// ParseTimeOfDay accepts "HH:MM" on a 30-minute boundary.
func ParseTimeOfDay(hm string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(hm))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time")
	}
	if t.Minute()%30 != 0 {
		return time.Time{}, httperr.ErrBusiness("invalid_time")
	}
	return t, nil
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

// SameDate compares calendar dates, ignoring the time of day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
