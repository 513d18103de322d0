package itinerary

import (
	"context"
	"errors"
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	response string
	err      error
	prompt   string
}

func (s *stubModel) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestGenerateEndToEnd(t *testing.T) {
	model := &stubModel{response: "Day 1:\n- 09:00 AM: Breakfast | Coffee and pastries"}
	g := NewGenerator(model)

	prefs := models.PreferenceSet{
		Budget:       500,
		PaceOfTravel: "Slow",
	}
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	days, err := g.Generate(context.Background(), prefs, start)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Breakfast", days[0].Activities[0].Name)

	assert.Contains(t, model.prompt, "Budget: $500")
	assert.Contains(t, model.prompt, "Pace of Travel: Slow")
}

func TestGenerateServiceFailureIsTerminal(t *testing.T) {
	svcErr := errors.New("upstream unavailable")
	g := NewGenerator(&stubModel{err: svcErr})

	days, err := g.Generate(context.Background(), models.PreferenceSet{Budget: 100}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, svcErr)
	assert.Nil(t, days)
}

func TestGenerateEmptyResponse(t *testing.T) {
	g := NewGenerator(&stubModel{response: "   \n  "})

	_, err := g.Generate(context.Background(), models.PreferenceSet{Budget: 100}, time.Time{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
