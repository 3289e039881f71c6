package scoring

// NutritionInput carries the demographics and stress modifiers for energy
// and protein targets.
type NutritionInput struct {
	Weight         float64 `json:"weight"` // actual, kg
	Height         float64 `json:"height"` // cm
	Age            float64 `json:"age"`
	Male           bool    `json:"male"`
	ActivityFactor float64 `json:"activity_factor"` // 1.0-1.4
	StressFactor   float64 `json:"stress_factor"`   // 1.0-2.0
	Temp           float64 `json:"temp"`
	ProteinTarget  float64 `json:"protein_target"` // g/kg/day
	Ventilated     bool    `json:"ventilated"`
	CRRT           bool    `json:"crrt"`
}

// NutritionResult is the computed prescription.
type NutritionResult struct {
	BMR             float64 `json:"bmr"` // kcal/day
	TEE             float64 `json:"tee"`
	ProteinGrams    float64 `json:"protein_grams"` // g/day
	FluidML         float64 `json:"fluid_ml"`      // mL/day
	RiskScore       int     `json:"risk_score"`
	RiskLevel       string  `json:"risk_level"`
	IdealBodyWeight float64 `json:"ideal_body_weight"`
}

// Nutrition computes the Harris-Benedict basal rate, total energy
// expenditure with activity, stress, fever and ventilation adjustments,
// protein and fluid targets, and a simple malnutrition risk grade.
func Nutrition(in NutritionInput) NutritionResult {
	bmr := 0.0
	if in.Male {
		bmr = 66.47 + 13.75*in.Weight + 5.003*in.Height - 6.755*in.Age
	} else {
		bmr = 655.1 + 9.563*in.Weight + 1.850*in.Height - 4.676*in.Age
	}

	activity := in.ActivityFactor
	if activity <= 0 {
		activity = 1.0
	}
	stress := in.StressFactor
	if stress <= 0 {
		stress = 1.0
	}

	tee := bmr * activity * stress
	if in.Temp > 37 {
		tee += tee * 0.13 * (in.Temp - 37)
	}
	if in.Ventilated {
		tee -= tee * 0.1
	}

	protein := in.Weight * in.ProteinTarget
	if in.CRRT {
		protein += 0.2 * in.Weight
	}

	fluid := in.Weight * 32.5
	if in.Temp > 37 {
		fluid += 360 * (in.Temp - 37)
	}

	ibw := IdealBodyWeight(in.Height, in.Male)
	risk := 0
	if ibw > 0 && in.Weight < ibw*0.9 {
		risk += 2
	}
	if in.Age > 70 {
		risk++
	}
	if stress > 1.3 {
		risk += 2
	}
	if in.CRRT {
		risk++
	}

	level := "low"
	switch {
	case risk >= 4:
		level = "high"
	case risk >= 2:
		level = "moderate"
	}

	return NutritionResult{
		BMR:             Round1(bmr),
		TEE:             Round1(tee),
		ProteinGrams:    Round1(protein),
		FluidML:         Round1(fluid),
		RiskScore:       risk,
		RiskLevel:       level,
		IdealBodyWeight: Round1(ibw),
	}
}
