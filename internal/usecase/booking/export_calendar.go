package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

type ExportCalendar struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewExportCalendar(repo domain.Repository, audit *audit.Dispatcher) *ExportCalendar {
	return &ExportCalendar{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *ExportCalendar) Execute(ctx context.Context, requestID string) (string, error) {
	bookings, err := uc.repo.Load(ctx)
	if err != nil {
		return "", storageError(err)
	}

	body := calendar.Export(bookings, uc.now())

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    audit.ActionCalendarExported,
		Entity:    audit.EntityCalendar,
		Metadata:  map[string]any{"events": len(bookings)},
	})

	return body, nil
}
