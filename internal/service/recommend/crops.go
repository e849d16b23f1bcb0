package recommend

// cropProfile is one row of the fixed reference table the scorer ranks against.
// NPK targets are midpoints in mg/kg; climate bands are the tolerance ranges
// the crop grows in without penalty.
type cropProfile struct {
	Name string

	PHMin float64
	PHMax float64

	TargetN float64
	TargetP float64
	TargetK float64

	TempMinC float64
	TempMaxC float64
	HumMin   float64
	HumMax   float64
}

// cropTable is ordered by name so a full-table scan with stable sort keeps the
// deterministic tie-break cheap.
var cropTable = []cropProfile{
	{Name: "Cotton", PHMin: 5.8, PHMax: 8.0, TargetN: 120, TargetP: 60, TargetK: 60, TempMinC: 21, TempMaxC: 35, HumMin: 40, HumMax: 70},
	{Name: "Gram", PHMin: 6.0, PHMax: 7.5, TargetN: 40, TargetP: 50, TargetK: 30, TempMinC: 15, TempMaxC: 30, HumMin: 30, HumMax: 60},
	{Name: "Maize", PHMin: 5.5, PHMax: 7.5, TargetN: 120, TargetP: 60, TargetK: 40, TempMinC: 18, TempMaxC: 32, HumMin: 40, HumMax: 75},
	{Name: "Mustard", PHMin: 6.0, PHMax: 7.5, TargetN: 80, TargetP: 40, TargetK: 40, TempMinC: 10, TempMaxC: 25, HumMin: 30, HumMax: 60},
	{Name: "Rice", PHMin: 5.0, PHMax: 6.8, TargetN: 100, TargetP: 50, TargetK: 50, TempMinC: 22, TempMaxC: 36, HumMin: 60, HumMax: 95},
	{Name: "Soybean", PHMin: 6.0, PHMax: 7.2, TargetN: 60, TargetP: 60, TargetK: 40, TempMinC: 20, TempMaxC: 32, HumMin: 45, HumMax: 80},
	{Name: "Sugarcane", PHMin: 6.0, PHMax: 7.8, TargetN: 150, TargetP: 60, TargetK: 80, TempMinC: 24, TempMaxC: 38, HumMin: 50, HumMax: 85},
	{Name: "Wheat", PHMin: 6.0, PHMax: 7.5, TargetN: 100, TargetP: 50, TargetK: 50, TempMinC: 12, TempMaxC: 28, HumMin: 30, HumMax: 65},
}
