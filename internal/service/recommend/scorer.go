package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/greencoders/soilcard/internal/domain/models"
)

// Component weights of the suitability score. They sum to 1 so a perfect fit
// on every component scores exactly 1.0 before clamping.
const (
	weightPH       = 0.40
	weightNutrient = 0.35
	weightClimate  = 0.25
)

// Score ranks the reference crops against a soil reading and weather snapshot
// and returns the top n candidates by descending suitability, ties broken by
// crop name ascending. It never fails: non-finite readings zero out the
// affected component and an unparseable NPK triplet contributes a neutral 0.
func Score(soil models.SoilReading, weather models.WeatherSnapshot, topN int) []models.CropCandidate {
	if topN <= 0 {
		return nil
	}

	npk, npkOK := models.ParseNPK(soil.NPK)

	candidates := make([]models.CropCandidate, 0, len(cropTable))
	for _, crop := range cropTable {
		phFit := phFitFor(crop, soil.PH)

		var nutrientFit float64
		if npkOK {
			nutrientFit = nutrientFitFor(crop, npk)
		}

		climateFit := climateFitFor(crop, weather)

		score := weightPH*phFit + weightNutrient*nutrientFit + weightClimate*climateFit
		score = clamp01(score)

		candidates = append(candidates, models.CropCandidate{
			Name:             crop.Name,
			SuitabilityScore: score,
			Rationale:        rationaleFor(crop, soil.PH, phFit, npkOK, climateFit),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].SuitabilityScore != candidates[j].SuitabilityScore {
			return candidates[i].SuitabilityScore > candidates[j].SuitabilityScore
		}
		return candidates[i].Name < candidates[j].Name
	})

	if topN < len(candidates) {
		candidates = candidates[:topN]
	}
	return candidates
}

// phFitFor is 1.0 across the acceptable range and falls off linearly outside
// it, reaching 0 one half-range-width beyond either edge.
func phFitFor(crop cropProfile, ph float64) float64 {
	if math.IsNaN(ph) || math.IsInf(ph, 0) {
		return 0
	}

	center := (crop.PHMin + crop.PHMax) / 2
	halfWidth := (crop.PHMax - crop.PHMin) / 2
	if halfWidth <= 0 {
		return 0
	}

	overshoot := math.Abs(ph-center) - halfWidth
	if overshoot <= 0 {
		return 1
	}
	return clamp01(1 - overshoot/halfWidth)
}

// nutrientFitFor averages the normalized distance of each nutrient from the
// crop's target midpoint.
func nutrientFitFor(crop cropProfile, npk models.NPKValues) float64 {
	fit := func(value, target float64) float64 {
		if target <= 0 {
			return 0
		}
		return clamp01(1 - math.Abs(value-target)/target)
	}

	sum := fit(npk.Nitrogen, crop.TargetN) +
		fit(npk.Phosphorus, crop.TargetP) +
		fit(npk.Potassium, crop.TargetK)
	return sum / 3
}

// climateFitFor penalizes weather readings outside the crop's tolerance band,
// scaled by the band width so narrow-band crops are not punished harder.
func climateFitFor(crop cropProfile, weather models.WeatherSnapshot) float64 {
	tempFit := bandFit(weather.TemperatureC, crop.TempMinC, crop.TempMaxC)
	humFit := bandFit(weather.HumidityPct, crop.HumMin, crop.HumMax)
	return (tempFit + humFit) / 2
}

func bandFit(value, min, max float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	width := max - min
	if width <= 0 {
		return 0
	}

	var overshoot float64
	switch {
	case value < min:
		overshoot = min - value
	case value > max:
		overshoot = value - max
	default:
		return 1
	}
	return clamp01(1 - overshoot/width)
}

func rationaleFor(crop cropProfile, ph, phFit float64, npkOK bool, climateFit float64) string {
	var phPart string
	if phFit >= 1 {
		phPart = fmt.Sprintf("pH %.1f sits inside the %.1f-%.1f window", ph, crop.PHMin, crop.PHMax)
	} else {
		phPart = fmt.Sprintf("pH %.1f is outside the %.1f-%.1f window", ph, crop.PHMin, crop.PHMax)
	}

	nutrientPart := fmt.Sprintf("target NPK %.0f:%.0f:%.0f mg/kg", crop.TargetN, crop.TargetP, crop.TargetK)
	if !npkOK {
		nutrientPart = "soil NPK not comparable"
	}

	climatePart := "current weather is within tolerance"
	if climateFit < 1 {
		climatePart = "current weather strains its tolerance band"
	}

	return fmt.Sprintf("%s; %s; %s", phPart, nutrientPart, climatePart)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
