package itinerary

import (
	"strings"
	"time"

	"voyago/models"
)

// ParseItinerary turns free text from the generation service into day
// records. The parse is best-effort and lossy: a line starting with "Day"
// opens a new day, a line containing a colon becomes an activity, anything
// else is dropped without error.
//
// Day N of the output is dated tripStart + (N-1). A zero tripStart dates
// every day with the current time.
func ParseItinerary(text string, tripStart time.Time) []models.ItineraryDay {
	var (
		days       []models.ItineraryDay
		started    bool
		activities []models.ItineraryActivity
	)

	flush := func() {
		if !started {
			return
		}
		days = append(days, models.ItineraryDay{
			Date:       dayDate(tripStart, len(days)),
			Activities: activities,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Day") {
			flush()
			started = true
			activities = nil
			continue
		}

		if activity, ok := parseActivityLine(line); ok {
			activities = append(activities, activity)
		}
	}

	flush()
	return days
}

// parseActivityLine splits "HH:MM AM: Name | Description" into its parts.
// The delimiter is the first colon that is not part of a clock time (a colon
// between two digits belongs to the time label, not the delimiter).
func parseActivityLine(line string) (models.ItineraryActivity, bool) {
	sep := delimiterIndex(line)
	if sep < 0 {
		return models.ItineraryActivity{}, false
	}

	timeLabel := strings.TrimSpace(line[:sep])
	timeLabel = strings.TrimSpace(strings.TrimPrefix(timeLabel, "-"))
	rest := line[sep+1:]

	name := rest
	description := ""
	if pipe := strings.Index(rest, "|"); pipe >= 0 {
		name = rest[:pipe]
		description = strings.TrimSpace(rest[pipe+1:])
	}

	return models.ItineraryActivity{
		Time:        timeLabel,
		Name:        strings.TrimSpace(name),
		Description: description,
	}, true
}

func delimiterIndex(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ':' {
			continue
		}
		if i > 0 && i+1 < len(line) && isDigit(line[i-1]) && isDigit(line[i+1]) {
			continue // clock colon, e.g. 09:00
		}
		return i
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func dayDate(tripStart time.Time, index int) time.Time {
	if tripStart.IsZero() {
		return time.Now()
	}
	return tripStart.AddDate(0, 0, index)
}
