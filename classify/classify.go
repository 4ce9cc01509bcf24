package classify

// Label is the categorical output of classification.
type Label string

const (
	// LabelHot flags critical conditions: fire-level heat or a gas hazard.
	LabelHot Label = "HOT"
	// LabelWarm flags elevated but non-dangerous temperature.
	LabelWarm Label = "WARM"
	// LabelCold covers all normal conditions.
	LabelCold Label = "COLD"
)

// Fixed rule thresholds. Comparisons are strict greater-than: a reading
// sitting exactly on a threshold does not cross it.
const (
	hotTempC  = 50.0
	warmTempC = 35.0
	hotCO2PPM = 1000
)

// Classify maps a temperature (°C) and CO2 concentration (ppm) to a label.
// The rules are evaluated in order; the HOT predicate must win over WARM
// near the boundary (temperature 51 with low CO2 is HOT, not WARM).
// Confidence is always 1.0: the policy is rule-based, not probabilistic,
// but the return shape leaves room for a calibrated score later.
func Classify(temperatureC float64, co2PPM int) (Label, float64) {
	if temperatureC > hotTempC || co2PPM > hotCO2PPM {
		return LabelHot, 1.0
	}
	if temperatureC > warmTempC {
		return LabelWarm, 1.0
	}
	return LabelCold, 1.0
}
