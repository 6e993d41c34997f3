package lock

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

// LocalLocker is an in-process keyed lock, enough for a single server
// process. Waiters give up with slot_locked when ctx is done.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) Lock(ctx context.Context, slot time.Time) (func(), error) {
	key := Key(slot)

	for {
		l.mu.Lock()
		held, busy := l.slots[key]
		if !busy {
			done := make(chan struct{})
			l.slots[key] = done
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.slots, key)
					l.mu.Unlock()
					close(done)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-held:
		case <-ctx.Done():
			return nil, httperr.ErrBusiness("slot_locked")
		}
	}
}

// Key identifies a slot by its wall-clock start.
func Key(slot time.Time) string {
	return "slot:" + slot.Format("2006-01-02T15:04")
}
