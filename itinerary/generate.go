package itinerary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voyago/models"
)

// TextGenerator is the external generation service: one prompt in, free text
// out. No schema is enforced on the response; all structure is imposed by
// ParseItinerary.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var ErrEmptyResponse = errors.New("generation service returned no text")

type Generator struct {
	model TextGenerator
}

func NewGenerator(model TextGenerator) *Generator {
	return &Generator{model: model}
}

// Generate builds the prompt, makes the single service call, and parses the
// response. A failed or empty call is terminal: no retry here, no fallback
// itinerary.
func (g *Generator) Generate(ctx context.Context, prefs models.PreferenceSet, tripStart time.Time) ([]models.ItineraryDay, error) {
	prompt := BuildPrompt(prefs)

	text, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	return ParseItinerary(text, tripStart), nil
}
