package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

func TestBuildMonthGrid_June2024(t *testing.T) {
	month := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	selected := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	b, err := domain.New(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), "11:00", "Ana", "a@x.com", "", "hi", time.UTC)
	require.NoError(t, err)

	g := buildMonthGrid(month, now, &selected, []domain.Booking{b}, "friends")

	assert.Equal(t, "June 2024", g.Label)
	require.Len(t, g.Weeks, 6)
	for _, w := range g.Weeks {
		assert.Len(t, w, 7)
	}

	// June 1st 2024 is a Saturday.
	assert.Equal(t, "2024-05-26", g.Weeks[0][0].Date)
	assert.False(t, g.Weeks[0][0].InMonth)
	assert.Equal(t, "2024-06-01", g.Weeks[0][6].Date)
	assert.True(t, g.Weeks[0][6].InMonth)
	assert.Equal(t, "2024-07-06", g.Weeks[5][6].Date)

	wed := g.Weeks[2][3]
	assert.Equal(t, "2024-06-12", wed.Date)
	assert.True(t, wed.Today)
	assert.Equal(t, []string{"11:00 Meeting with Ana"}, wed.Events)
	assert.Contains(t, wed.URL, "view=friends")

	assert.True(t, g.Weeks[2][5].Selected)
	assert.Contains(t, g.PrevURL, "month=2024-05")
	assert.Contains(t, g.NextURL, "month=2024-07")
}

func TestPageQuery(t *testing.T) {
	assert.Equal(t, "/", pageQuery(""))
	assert.Equal(t, "/?view=friends", pageQuery("friends"))
	assert.Equal(t, "/?date=2024-06-12&step=form", pageQuery("", "date", "2024-06-12", "step", "form", "time", ""))
}

func TestParseMonth_FallsBack(t *testing.T) {
	fallback := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), parseMonth("2024-02", fallback))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), parseMonth("feb", fallback))
}
