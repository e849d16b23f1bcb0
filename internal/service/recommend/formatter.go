package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/greencoders/soilcard/internal/domain/models"
)

// Format renders ranked candidates and the soil context as a deterministic
// human-readable block. Identical input always yields byte-identical output;
// the text is shown to users and embedded verbatim in advisory prompts.
func Format(candidates []models.CropCandidate, soil models.SoilReading) string {
	var b strings.Builder

	b.WriteString("Top crop recommendations:\n")
	if len(candidates) == 0 {
		b.WriteString("  (no suitable crops found)\n")
	}
	for i, c := range candidates {
		pct := int(math.Round(c.SuitabilityScore * 100))
		fmt.Fprintf(&b, "%d. %s (%d%% match): %s\n", i+1, c.Name, pct, c.Rationale)
	}

	fmt.Fprintf(&b, "Soil context: pH %.1f, organic carbon %.2f%%, NPK %s.", soil.PH, soil.OrganicCarbonPct, soil.NPK)
	return b.String()
}
