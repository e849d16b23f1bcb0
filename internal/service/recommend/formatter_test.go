package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/domain/models"
)

func TestFormatIsDeterministic(t *testing.T) {
	candidates := Score(referenceSoil, referenceWeather, 3)

	first := Format(candidates, referenceSoil)
	second := Format(candidates, referenceSoil)
	assert.Equal(t, first, second, "same input must yield byte-identical output")
}

func TestFormatContents(t *testing.T) {
	candidates := []models.CropCandidate{
		{Name: "Wheat", SuitabilityScore: 0.876, Rationale: "pH fits"},
		{Name: "Maize", SuitabilityScore: 0.642, Rationale: "slightly warm"},
	}

	out := Format(candidates, referenceSoil)

	require.True(t, strings.HasPrefix(out, "Top crop recommendations:\n"))
	assert.Contains(t, out, "1. Wheat (88% match): pH fits")
	assert.Contains(t, out, "2. Maize (64% match): slightly warm")
	assert.Contains(t, out, "Soil context: pH 6.5, organic carbon 0.60%, NPK 100:50:50.")
}

func TestFormatEmptyCandidates(t *testing.T) {
	out := Format(nil, referenceSoil)
	assert.Contains(t, out, "(no suitable crops found)")
	assert.Contains(t, out, "Soil context:")
}
