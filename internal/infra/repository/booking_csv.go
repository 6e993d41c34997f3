package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

// BookingColumns is the fixed header of the bookings file.
var BookingColumns = []string{"start", "end", "title", "email", "phone", "notes"}

type bookingRow struct {
	Start string `csv:"start"`
	End   string `csv:"end"`
	Title string `csv:"title"`
	Email string `csv:"email"`
	Phone string `csv:"phone"`
	Notes string `csv:"notes"`
}

// BookingCSVRepository keeps bookings in a flat CSV file, one row per
// booking, appended in submission order.
type BookingCSVRepository struct {
	path string
	loc  *time.Location
	mu   sync.Mutex
}

func NewBookingCSVRepository(path string, loc *time.Location) *BookingCSVRepository {
	return &BookingCSVRepository{path: path, loc: loc}
}

// --------------------------------------------------
// Load
// --------------------------------------------------

func (r *BookingCSVRepository) Load(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open bookings file: %w", err)
	}
	defer f.Close()

	var rows []*bookingRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for i, row := range rows {
		b, err := r.fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("bookings file row %d: %w", i+2, err)
		}
		out = append(out, b)
	}

	return out, nil
}

// ensureFile creates the file with only the header when it is missing.
func (r *BookingCSVRepository) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat bookings file: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create bookings file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(BookingColumns); err != nil {
		return fmt.Errorf("write bookings header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write bookings header: %w", err)
	}

	return nil
}

// --------------------------------------------------
// Append
// --------------------------------------------------

func (r *BookingCSVRepository) Append(ctx context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureFile(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open bookings file: %w", err)
	}

	rows := []*bookingRow{r.toRow(b)}
	if err := gocsv.MarshalWithoutHeaders(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("append booking: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync bookings file: %w", err)
	}

	return f.Close()
}

// --------------------------------------------------
// Row mapping
// --------------------------------------------------

func (r *BookingCSVRepository) toRow(b domain.Booking) *bookingRow {
	return &bookingRow{
		Start: b.Start.In(r.loc).Format(domain.TimestampLayout),
		End:   b.End.In(r.loc).Format(domain.TimestampLayout),
		Title: b.Title,
		Email: b.Email,
		Phone: b.Phone,
		Notes: b.Notes,
	}
}

func (r *BookingCSVRepository) fromRow(row *bookingRow) (domain.Booking, error) {
	start, err := parseTimestamp(row.Start, r.loc)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("start: %w", err)
	}

	end, err := parseTimestamp(row.End, r.loc)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("end: %w", err)
	}

	return domain.Booking{
		Start: start,
		End:   end,
		Title: row.Title,
		Email: row.Email,
		Phone: row.Phone,
		Notes: row.Notes,
	}, nil
}

// parseTimestamp reads naive ISO-8601 wall-clock values in loc; values
// carrying an offset are converted into loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.TimestampLayout, s, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

var _ domain.Repository = (*BookingCSVRepository)(nil)
