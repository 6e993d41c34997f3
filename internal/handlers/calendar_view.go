package handlers

import (
	"net/url"
	"time"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

type dayCell struct {
	Day      int
	Date     string
	URL      string
	InMonth  bool
	Today    bool
	Selected bool
	Events   []string
}

type monthGrid struct {
	Label    string
	PrevURL  string
	NextURL  string
	TodayURL string
	Weeks    [][]dayCell
}

type slotLink struct {
	Time string
	URL  string
}

// pageQuery builds "/?..." links that keep the audience flag.
func pageQuery(view string, kv ...string) string {
	q := url.Values{}
	if view != "" {
		q.Set("view", view)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// buildMonthGrid lays out month in Sunday-first weeks, padding with
// days of the neighbouring months.
func buildMonthGrid(
	month time.Time,
	now time.Time,
	selected *time.Time,
	bookings []domain.Booking,
	view string,
) monthGrid {

	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	events := make(map[string][]string)
	for _, b := range bookings {
		key := b.Start.In(loc).Format(domain.DateLayout)
		events[key] = append(events[key], b.Start.In(loc).Format(domain.TimeLayout)+" "+b.Title)
	}

	var weeks [][]dayCell
	var week []dayCell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateLayout)
		week = append(week, dayCell{
			Day:      d.Day(),
			Date:     key,
			URL:      pageQuery(view, "month", d.Format(monthLayout), "date", key),
			InMonth:  d.Month() == first.Month(),
			Today:    domain.SameDate(d, now),
			Selected: selected != nil && domain.SameDate(d, *selected),
			Events:   events[key],
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}

	return monthGrid{
		Label:    first.Format("January 2006"),
		PrevURL:  pageQuery(view, "month", first.AddDate(0, -1, 0).Format(monthLayout)),
		NextURL:  pageQuery(view, "month", first.AddDate(0, 1, 0).Format(monthLayout)),
		TodayURL: pageQuery(view, "month", now.Format(monthLayout), "date", now.Format(domain.DateLayout)),
		Weeks:    weeks,
	}
}
