package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(13)
	b := GenerateRandomString(13)

	assert.Len(t, a, 13)
	assert.Len(t, b, 13)
	assert.NotEqual(t, a, b)
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatClock12("09:00"))
	assert.Equal(t, "12:00 PM", FormatClock12("12:00"))
	assert.Equal(t, "9:30 PM", FormatClock12("21:30"))
	assert.Equal(t, "12:05 AM", FormatClock12("00:05"))
	// unparseable input passes through
	assert.Equal(t, "late morning", FormatClock12("late morning"))
}

func TestClockOrder(t *testing.T) {
	assert.True(t, ClockOrder("09:00", "18:00"))
	assert.True(t, ClockOrder("09:00", "09:00"))
	assert.False(t, ClockOrder("18:00", "09:00"))
	assert.False(t, ClockOrder("bogus", "09:00"))
}
