package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists every booking in stored order. A non-nil date keeps
// only bookings starting on that calendar date.
func (uc *ListBookings) Execute(
	ctx context.Context,
	date *time.Time,
) ([]dto.BookingDTO, error) {

	bookings, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		if date != nil && !domain.SameDate(b.Start.In(date.Location()), *date) {
			continue
		}
		out = append(out, dto.FromBooking(b))
	}

	return out, nil
}

// Month returns the bookings starting in the month of anchor, for the
// page's calendar grid.
func (uc *ListBookings) Month(
	ctx context.Context,
	anchor time.Time,
) ([]domain.Booking, error) {

	bookings, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	loc := anchor.Location()
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	out := make([]domain.Booking, 0)
	for _, b := range bookings {
		s := b.Start.In(loc)
		if !s.Before(start) && s.Before(end) {
			out = append(out, b)
		}
	}

	return out, nil
}
