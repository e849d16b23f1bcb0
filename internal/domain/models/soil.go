package models

import (
	"math"
	"strconv"
	"strings"
)

// SoilReading captures the measured soil-test values submitted by a farmer.
// NPK holds the raw colon-separated triplet exactly as entered (e.g. "100:50:50");
// parsing is deferred so a malformed triplet degrades scoring instead of
// failing card creation.
type SoilReading struct {
	PH               float64 `bson:"ph" json:"ph"`
	OrganicCarbonPct float64 `bson:"organic_carbon_pct" json:"organicCarbonPct"`
	NPK              string  `bson:"npk" json:"npk"`
}

// NPKValues is the parsed nitrogen/phosphorus/potassium triplet.
type NPKValues struct {
	Nitrogen   float64
	Phosphorus float64
	Potassium  float64
}

// ParseNPK splits a colon-separated triplet into its numeric components.
// The second return value reports whether the string parsed into exactly
// three finite numbers; callers treat a false result as "triplet unknown".
func ParseNPK(raw string) (NPKValues, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 3 {
		return NPKValues{}, false
	}

	values := make([]float64, 0, 3)
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return NPKValues{}, false
		}
		values = append(values, v)
	}

	return NPKValues{Nitrogen: values[0], Phosphorus: values[1], Potassium: values[2]}, true
}

// Validate checks the agronomic bounds on the reading. The NPK string is
// intentionally not validated here; an unparseable triplet is kept as opaque
// text per the scoring contract.
func (s SoilReading) Validate() error {
	if math.IsNaN(s.PH) || math.IsInf(s.PH, 0) || s.PH < 0 || s.PH > 14 {
		return ErrInvalidInput
	}
	if math.IsNaN(s.OrganicCarbonPct) || math.IsInf(s.OrganicCarbonPct, 0) || s.OrganicCarbonPct < 0 {
		return ErrInvalidInput
	}
	return nil
}
