package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

const monthLayout = "2006-01"

func nowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

func today(loc *time.Location) time.Time {
	n := nowIn(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// parseMonth falls back to the month of fallback on empty or bad input.
func parseMonth(s string, fallback time.Time) time.Time {
	if m, err := time.ParseInLocation(monthLayout, s, fallback.Location()); err == nil {
		return m
	}
	return time.Date(fallback.Year(), fallback.Month(), 1, 0, 0, 0, 0, fallback.Location())
}

func parseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func longDate(d time.Time) string {
	return d.Format("Monday, January 02")
}
