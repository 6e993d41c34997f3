package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

func newCSVRepo(t *testing.T) (*BookingCSVRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.csv")
	return NewBookingCSVRepository(path, time.UTC), path
}

func TestBookingCSVRepository_LoadCreatesHeaderOnlyFile(t *testing.T) {
	repo, path := newCSVRepo(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "start,end,title,email,phone,notes\n", string(raw))
}

func TestBookingCSVRepository_EmptyFileIsEmptyStore(t *testing.T) {
	repo, path := newCSVRepo(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingCSVRepository_AppendWritesExpectedRow(t *testing.T) {
	repo, path := newCSVRepo(t)
	ctx := context.Background()

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	b, err := domain.New(date, "10:00", "Ana", "a@x.com", "", "hi", time.UTC)
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, b))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "start,end,title,email,phone,notes", lines[0])
	assert.Equal(t, "2024-06-10T10:00:00,2024-06-10T10:30:00,Meeting with Ana,a@x.com,,hi", lines[1])
}

func TestBookingCSVRepository_RoundTrip(t *testing.T) {
	repo, _ := newCSVRepo(t)
	ctx := context.Background()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	var want []domain.Booking
	for _, hm := range []string{"10:00", "11:30", "15:30"} {
		b, err := domain.New(
			date, hm,
			gofakeit.Name(), gofakeit.Email(), gofakeit.Phone(),
			gofakeit.Sentence(6)+", with a comma\nand a newline",
			time.UTC,
		)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, b))
		want = append(want, b)
	}

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	last := got[len(got)-1]
	assert.True(t, want[2].Start.Equal(last.Start))
	assert.True(t, want[2].End.Equal(last.End))
	assert.Equal(t, want[2].Title, last.Title)
	assert.Equal(t, want[2].Email, last.Email)
	assert.Equal(t, want[2].Phone, last.Phone)
	assert.Equal(t, want[2].Notes, last.Notes)
}

func TestBookingCSVRepository_LoadIsIdempotent(t *testing.T) {
	repo, _ := newCSVRepo(t)
	ctx := context.Background()

	b, err := domain.New(time.Now(), "12:00", "Bo", "b@x.com", "555", "sync", time.UTC)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, b))

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	second, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBookingCSVRepository_ReadsOffsetTimestamps(t *testing.T) {
	repo, path := newCSVRepo(t)
	content := "start,end,title,email,phone,notes\n" +
		"2024-06-10T13:00:00Z,2024-06-10T13:30:00Z,Meeting with Ana,a@x.com,,hi\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-10T13:00:00", got[0].Start.Format(domain.TimestampLayout))
}

func TestBookingCSVRepository_BadTimestampIsError(t *testing.T) {
	repo, path := newCSVRepo(t)
	content := "start,end,title,email,phone,notes\n" +
		"yesterday,2024-06-10T13:30:00,Meeting with Ana,a@x.com,,hi\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := repo.Load(context.Background())
	assert.ErrorContains(t, err, "row 2")
}

func TestBookingCSVRepository_UnwritableDirectory(t *testing.T) {
	repo := NewBookingCSVRepository(filepath.Join(t.TempDir(), "missing", "bookings.csv"), time.UTC)

	_, err := repo.Load(context.Background())
	assert.Error(t, err)

	b, _ := domain.New(time.Now(), "10:00", "Ana", "a@x.com", "", "hi", time.UTC)
	assert.Error(t, repo.Append(context.Background(), b))
}
