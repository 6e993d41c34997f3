package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

type BookingGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewBookingGormRepository(db *gorm.DB, loc *time.Location) *BookingGormRepository {
	return &BookingGormRepository{db: db, loc: loc}
}

func (r *BookingGormRepository) Load(ctx context.Context) ([]domain.Booking, error) {
	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Booking{
			Start: wallClockIn(row.StartTime, r.loc),
			End:   wallClockIn(row.EndTime, r.loc),
			Title: row.Title,
			Email: row.Email,
			Phone: row.Phone,
			Notes: row.Notes,
		})
	}

	return out, nil
}

func (r *BookingGormRepository) Append(ctx context.Context, b domain.Booking) error {
	row := models.Booking{
		StartTime: naive(b.Start, r.loc),
		EndTime:   naive(b.End, r.loc),
		Title:     b.Title,
		Email:     b.Email,
		Phone:     b.Phone,
		Notes:     b.Notes,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	return nil
}

// naive keeps the wall clock of t in loc and drops the zone, matching
// the "timestamp without time zone" column.
func naive(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		time.UTC,
	)
}

func wallClockIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		loc,
	)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
