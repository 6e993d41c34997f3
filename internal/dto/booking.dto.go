package dto

import (
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

type BookingDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func FromBooking(b domain.Booking) BookingDTO {
	return BookingDTO{
		Start: b.Start.Format(domain.TimestampLayout),
		End:   b.End.Format(domain.TimestampLayout),
		Title: b.Title,
		Email: b.Email,
		Phone: b.Phone,
		Notes: b.Notes,
	}
}
