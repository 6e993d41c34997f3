package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	RequestID string

	Date string // YYYY-MM-DD
	Time string // HH:MM
	Mode domain.Mode

	Name  string
	Email string
	Phone string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
	loc    *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		loc:    loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (domain.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	notes := strings.TrimSpace(in.Notes)
	if name == "" || email == "" || notes == "" {
		return domain.Booking{}, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 2. Slot
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date, uc.loc)
	if err != nil {
		return domain.Booking{}, err
	}

	b, err := domain.New(date, in.Time, name, email, strings.TrimSpace(in.Phone), notes, uc.loc)
	if err != nil {
		return domain.Booking{}, err
	}

	// --------------------------------------------------
	// 3. Lock, re-check and append
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, b.Start)
	if err != nil {
		return domain.Booking{}, err
	}
	defer release()

	bookings, err := uc.repo.Load(ctx)
	if err != nil {
		return domain.Booking{}, storageError(err)
	}

	avail := domain.Compute(date, in.Mode, bookings)
	if !avail.Has(b.Start.Format(domain.TimeLayout)) {
		return domain.Booking{}, httperr.ErrBusiness("slot_unavailable")
	}

	if err := uc.repo.Append(ctx, b); err != nil {
		return domain.Booking{}, storageError(err)
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	start := b.Start
	uc.audit.Dispatch(audit.Event{
		RequestID:    in.RequestID,
		Action:       audit.ActionBookingCreated,
		Entity:       audit.EntityBooking,
		BookingStart: &start,
		Email:        b.Email,
		Metadata: map[string]any{
			"mode":  string(in.Mode),
			"title": b.Title,
		},
	})

	return b, nil
}
