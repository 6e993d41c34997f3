package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionBookingCreated   = "booking_created"
	ActionCalendarExported = "calendar_exported"

	EntityBooking  = "booking"
	EntityCalendar = "calendar"

	queueSize   = 100
	sinkTimeout = 10 * time.Second
)

type Event struct {
	RequestID    string
	Action       string
	Entity       string
	BookingStart *time.Time
	Email        string
	Metadata     any
}

// Sink receives every dispatched event on the worker goroutine.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	log   *zap.Logger
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, queueSize),
		log:   log,
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			if err := s.Record(ctx, ev); err != nil {
				d.log.Error("audit sink failed",
					zap.String("action", ev.Action),
					zap.Error(err),
				)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request: when the queue is full the event
// is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
