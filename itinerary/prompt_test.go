package itinerary

import (
	"strings"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func samplePrefs() models.PreferenceSet {
	return models.PreferenceSet{
		Budget:                   1200,
		PaceOfTravel:             "Medium",
		CuisinePreferences:       []string{"Japanese", "Local"},
		CrowdPreference:          "Empty",
		TransportationPreference: "Public Transport",
		DailyStartTime:           "09:00",
		DailyEndTime:             "21:30",
		ActivityPreferences:      []string{"Museums", "Local Markets"},
		CustomAdditions:          "One rest afternoon",
	}
}

func TestBuildPromptFields(t *testing.T) {
	prompt := BuildPrompt(samplePrefs())

	assert.Contains(t, prompt, "Generate a detailed 3-day itinerary")
	assert.Contains(t, prompt, "Budget: $1200")
	assert.Contains(t, prompt, "Cuisine Preferences: Japanese, Local")
	assert.Contains(t, prompt, "Daily Start Time: 9:00 AM")
	assert.Contains(t, prompt, "Daily End Time: 9:30 PM")
	assert.Contains(t, prompt, "Activity Preferences: Museums, Local Markets")
	assert.Contains(t, prompt, "Custom Additions: One rest afternoon")
}

func TestBuildPromptRequestsParsableFormat(t *testing.T) {
	prompt := BuildPrompt(samplePrefs())

	assert.Contains(t, prompt, "Day 1:\n- 09:00 AM: Activity 1 | Brief description")
	assert.Contains(t, prompt, "Day 2:")
	assert.Contains(t, prompt, "Day 3:")
}

func TestBuildPromptDeterministic(t *testing.T) {
	prefs := samplePrefs()
	assert.Equal(t, BuildPrompt(prefs), BuildPrompt(prefs))
}

func TestBuildPromptEmptySets(t *testing.T) {
	prefs := samplePrefs()
	prefs.CuisinePreferences = nil
	prefs.CustomAdditions = ""

	prompt := BuildPrompt(prefs)
	assert.True(t, strings.Contains(prompt, "Cuisine Preferences: \n"))
	assert.True(t, strings.Contains(prompt, "Custom Additions: \n"))
}
