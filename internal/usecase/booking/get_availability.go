package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	Date time.Time
	Mode domain.Mode
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (domain.Availability, error) {

	bookings, err := uc.repo.Load(ctx)
	if err != nil {
		return domain.Availability{}, storageError(err)
	}

	return domain.Compute(in.Date, in.Mode, bookings), nil
}

// storageError tags repository failures with the storage_error code
// while keeping the cause for logs.
func storageError(err error) error {
	return fmt.Errorf("%w: %w", httperr.ErrBusiness("storage_error"), err)
}
