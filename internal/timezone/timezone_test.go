package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Mars/Olympus"))
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Lisbon"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Nowhere"))
}
