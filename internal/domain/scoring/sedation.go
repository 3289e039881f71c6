package scoring

import "math"

// DrugLimit describes the charting bounds for one sedation or analgesia
// infusion.
type DrugLimit struct {
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	DoseUnit       string    `json:"dose_unit"`
	ConcUnit       string    `json:"concentration_unit"`
	Concentrations []float64 `json:"concentrations"`
	MinDose        float64   `json:"min_dose"`
	MaxDose        float64   `json:"max_dose"`
	InitialDose    float64   `json:"initial_dose"`
}

// Formulary is the fixed set of infusions the sedation panel charts.
var Formulary = []DrugLimit{
	{
		Code:           "fentanyl",
		Name:           "Fentanyl",
		DoseUnit:       "mcg/kg/h",
		ConcUnit:       "mcg/mL",
		Concentrations: []float64{50, 100},
		MinDose:        0.5,
		MaxDose:        10,
		InitialDose:    1.5,
	},
	{
		Code:           "propofol",
		Name:           "Propofol",
		DoseUnit:       "mg/kg/h",
		ConcUnit:       "mg/mL",
		Concentrations: []float64{10, 20},
		MinDose:        0.5,
		MaxDose:        4,
		InitialDose:    1.5,
	},
	{
		Code:           "dexmedetomidine",
		Name:           "Dexmedetomidine",
		DoseUnit:       "mcg/kg/h",
		ConcUnit:       "mcg/mL",
		Concentrations: []float64{4, 100},
		MinDose:        0.2,
		MaxDose:        1.5,
		InitialDose:    0.5,
	},
	{
		Code:           "midazolam",
		Name:           "Midazolam",
		DoseUnit:       "mg/kg/h",
		ConcUnit:       "mg/mL",
		Concentrations: []float64{1, 5},
		MinDose:        0.02,
		MaxDose:        0.2,
		InitialDose:    0.05,
	},
}

// LimitFor looks up a formulary entry by code.
func LimitFor(code string) (DrugLimit, bool) {
	for _, d := range Formulary {
		if d.Code == code {
			return d, true
		}
	}
	return DrugLimit{}, false
}

// InfusionRate converts a weight-based dose to a pump rate in mL/h, rounded
// to two decimals. ok is false when dose or concentration is absent, in
// which case the previously charted rate should be kept.
func InfusionRate(dose, weight, concentration float64) (float64, bool) {
	if dose <= 0 || concentration <= 0 {
		return 0, false
	}
	return Round2(dose * weight / concentration), true
}

// CPOTInterpretation bands a total Critical-Care Pain Observation Tool score
// (0-8).
func CPOTInterpretation(total int) string {
	switch {
	case total <= 2:
		return "adequate analgesia"
	case total <= 4:
		return "mild pain"
	default:
		return "significant pain"
	}
}

// RASSInterpretation classifies a Richmond Agitation-Sedation Scale score
// against the usual -1..0 goal band.
func RASSInterpretation(score int) string {
	switch {
	case score > 0:
		return "agitated"
	case score >= -1:
		return "at goal"
	case score == -2:
		return "light sedation"
	default:
		return "oversedated"
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
