package booking

import (
	"context"
	"time"
)

// Repository is the append-only booking store.
type Repository interface {
	Load(ctx context.Context) ([]Booking, error)
	Append(ctx context.Context, b Booking) error
}

// Locker serializes the availability re-check and the append for one
// slot. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, slot time.Time) (func(), error)
}
