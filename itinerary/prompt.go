package itinerary

import (
	"fmt"
	"strings"

	"voyago/models"
	"voyago/utils"
)

// dayCount is fixed: the prompt always asks for a 3-day plan.
const dayCount = 3

// BuildPrompt serializes a preference set into the generation-service
// instruction. The output is deterministic for a given input; the bullet
// format it requests is the same one ParseItinerary understands.
func BuildPrompt(prefs models.PreferenceSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a detailed %d-day itinerary based on the following preferences:\n", dayCount)
	fmt.Fprintf(&b, "Budget: $%d\n", prefs.Budget)
	fmt.Fprintf(&b, "Pace of Travel: %s\n", prefs.PaceOfTravel)
	fmt.Fprintf(&b, "Cuisine Preferences: %s\n", strings.Join(prefs.CuisinePreferences, ", "))
	fmt.Fprintf(&b, "Crowd Preference: %s\n", prefs.CrowdPreference)
	fmt.Fprintf(&b, "Transportation Preference: %s\n", prefs.TransportationPreference)
	fmt.Fprintf(&b, "Daily Start Time: %s\n", utils.FormatClock12(prefs.DailyStartTime))
	fmt.Fprintf(&b, "Daily End Time: %s\n", utils.FormatClock12(prefs.DailyEndTime))
	fmt.Fprintf(&b, "Activity Preferences: %s\n", strings.Join(prefs.ActivityPreferences, ", "))
	fmt.Fprintf(&b, "Custom Additions: %s\n", prefs.CustomAdditions)

	b.WriteString("\nPlease provide a detailed itinerary for each day, including specific times, activities, and brief descriptions. Format the response as follows:\n\n")
	b.WriteString("Day 1:\n")
	b.WriteString("- 09:00 AM: Activity 1 | Brief description\n")
	b.WriteString("- 11:00 AM: Activity 2 | Brief description\n")
	b.WriteString("...\n")
	for i := 2; i <= dayCount; i++ {
		fmt.Fprintf(&b, "\nDay %d:\n...\n", i)
	}

	return b.String()
}
