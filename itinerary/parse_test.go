package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItineraryTwoDays(t *testing.T) {
	text := "Day 1:\n" +
		"- 09:00 AM: Breakfast | Coffee and pastries\n" +
		"- 11:00 AM: Museum | Art tour\n" +
		"Day 2:\n" +
		"- 10:00 AM: Hike | Trail walk"

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	days := ParseItinerary(text, start)

	require.Len(t, days, 2)
	require.Len(t, days[0].Activities, 2)
	require.Len(t, days[1].Activities, 1)

	assert.Equal(t, "Breakfast", days[0].Activities[0].Name)
	assert.Equal(t, "Coffee and pastries", days[0].Activities[0].Description)
	assert.Equal(t, "09:00 AM", days[0].Activities[0].Time)
	assert.Equal(t, "Museum", days[0].Activities[1].Name)
	assert.Equal(t, "Hike", days[1].Activities[0].Name)

	assert.Equal(t, start, days[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 1), days[1].Date)
}

func TestParseItineraryNoColonLineDropped(t *testing.T) {
	days := ParseItinerary("Day 1:\njust some text", time.Time{})

	require.Len(t, days, 1)
	assert.Empty(t, days[0].Activities)
}

func TestParseItineraryColonWithoutPipe(t *testing.T) {
	days := ParseItinerary("Day 1:\n- 09:00 AM: Breakfast", time.Time{})

	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Breakfast", days[0].Activities[0].Name)
	assert.Equal(t, "", days[0].Activities[0].Description)
}

func TestParseItineraryLinesBeforeFirstDayDropped(t *testing.T) {
	text := "Here is your itinerary: enjoy\n" +
		"- 08:00 AM: Stray | Should not appear\n" +
		"Day 1:\n" +
		"- 09:00 AM: Breakfast | Coffee"

	days := ParseItinerary(text, time.Time{})

	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Breakfast", days[0].Activities[0].Name)
}

func TestParseItineraryEmptyInput(t *testing.T) {
	assert.Empty(t, ParseItinerary("", time.Time{}))
	assert.Empty(t, ParseItinerary("no days here", time.Time{}))
}

func TestParseItineraryZeroStartDatesWithNow(t *testing.T) {
	before := time.Now()
	days := ParseItinerary("Day 1:\n- 09:00 AM: Breakfast | Coffee", time.Time{})
	after := time.Now()

	require.Len(t, days, 1)
	assert.False(t, days[0].Date.Before(before))
	assert.False(t, days[0].Date.After(after))
}

func TestDelimiterIndexSkipsClockColons(t *testing.T) {
	line := "10:30 PM: Night market | Street food"
	act, ok := parseActivityLine(line)

	require.True(t, ok)
	assert.Equal(t, "10:30 PM", act.Time)
	assert.Equal(t, "Night market", act.Name)
	assert.Equal(t, "Street food", act.Description)
}
