package twin

import "math"

// baseCurve is the reference yield progression across a 90-day season under
// optimal inputs, expressed as percent of potential yield.
var baseCurve = []Point{
	{Day: 10, YieldPct: 20},
	{Day: 20, YieldPct: 35},
	{Day: 30, YieldPct: 50},
	{Day: 40, YieldPct: 65},
	{Day: 50, YieldPct: 78},
	{Day: 60, YieldPct: 85},
	{Day: 70, YieldPct: 92},
	{Day: 80, YieldPct: 95},
	{Day: 90, YieldPct: 100},
}

// Point is one sample of the projected yield curve.
type Point struct {
	Day      int     `json:"day"`
	YieldPct float64 `json:"yieldPct"`
}

// Result carries the simulated curve plus headline figures.
type Result struct {
	Curve              []Point `json:"curve"`
	FinalYieldPct      float64 `json:"finalYieldPct"`
	PestRisk           string  `json:"pestRisk"`
	ProjectedProfitINR float64 `json:"projectedProfitInr"`
}

// Simulate scales the reference curve by irrigation and fertilizer levels
// (0-100 each). The model is deliberately simple and fully deterministic.
func Simulate(irrigationPct, fertilizerPct int) Result {
	irrigationPct = clampPct(irrigationPct)
	fertilizerPct = clampPct(fertilizerPct)

	factor := float64(irrigationPct+fertilizerPct) / 100

	curve := make([]Point, len(baseCurve))
	for i, p := range baseCurve {
		scaled := math.Min(100, math.Round(p.YieldPct*factor*1.1))
		curve[i] = Point{Day: p.Day, YieldPct: scaled}
	}

	final := curve[len(curve)-1].YieldPct

	pestRisk := "Low"
	if irrigationPct > 80 {
		pestRisk = "Moderate"
	}

	return Result{
		Curve:              curve,
		FinalYieldPct:      final,
		PestRisk:           pestRisk,
		ProjectedProfitINR: math.Round(final * 450),
	}
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
