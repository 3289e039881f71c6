package scoring

// SodiumInput carries the variables for hyponatremia correction planning.
type SodiumInput struct {
	Current float64 `json:"current"` // mEq/L
	Target  float64 `json:"target"`
	Weight  float64 `json:"weight"`
	Age     float64 `json:"age"`
	Glucose float64 `json:"glucose"` // mg/dL, for the hyperglycemia correction
	Male    bool    `json:"male"`
}

// SodiumResult is the computed correction plan.
type SodiumResult struct {
	TotalBodyWater  float64 `json:"total_body_water"` // L
	Deficit         float64 `json:"deficit"`          // mEq
	CorrectedSodium float64 `json:"corrected_sodium"` // glucose-adjusted, mEq/L
	NormalSalineML  float64 `json:"normal_saline_ml"`
	HypertonicML    float64 `json:"hypertonic_ml"`
	MaxRate         float64 `json:"max_rate"` // mEq/L/h
	CorrectionHours float64 `json:"correction_hours"`
}

// SodiumCorrection plans a sodium deficit replacement using the Watson total
// body water fractions, the 0.9% (154 mEq/L) and 3% (513 mEq/L) saline
// sodium contents, and a rate cap halved below 120 mEq/L to avoid osmotic
// demyelination.
func SodiumCorrection(in SodiumInput) SodiumResult {
	fraction := 0.0
	if in.Male {
		fraction = 0.6
		if in.Age >= 60 {
			fraction = 0.5
		}
	} else {
		fraction = 0.5
		if in.Age >= 60 {
			fraction = 0.45
		}
	}
	tbw := in.Weight * fraction
	deficit := (in.Target - in.Current) * tbw

	corrected := in.Current
	if in.Glucose > 100 {
		corrected = in.Current + 1.6*((in.Glucose-100)/100)
	}

	maxRate := 0.25
	if in.Current < 120 {
		maxRate = 0.5
	}

	hours := 0.0
	if tbw > 0 {
		hours = deficit / (maxRate * tbw)
	}

	return SodiumResult{
		TotalBodyWater:  Round1(tbw),
		Deficit:         Round1(deficit),
		CorrectedSodium: Round1(corrected),
		NormalSalineML:  Round1(deficit / 154 * 1000),
		HypertonicML:    Round1(deficit / 513 * 1000),
		MaxRate:         maxRate,
		CorrectionHours: Round1(hours),
	}
}

// OsmolalityInput carries serum chemistry plus the urine values for free
// water clearance.
type OsmolalityInput struct {
	Sodium      float64 `json:"sodium"`
	Glucose     float64 `json:"glucose"`
	Urea        float64 `json:"urea"` // BUN, mg/dL
	Ethanol     float64 `json:"ethanol"`
	Mannitol    float64 `json:"mannitol"`
	MeasuredOsm float64 `json:"measured_osm"`
	UrineOsm    float64 `json:"urine_osm"`
	UrineOutput float64 `json:"urine_output"` // mL/day
}

// OsmolalityResult is the computed osmolality panel.
type OsmolalityResult struct {
	Calculated         float64 `json:"calculated"` // mOsm/kg
	OsmolarGap         float64 `json:"osmolar_gap"`
	FreeWaterClearance float64 `json:"free_water_clearance"` // L/day
	Classification     string  `json:"classification"`
}

// Osmolality computes calculated serum osmolality including the ethanol and
// mannitol contributions, the osmolar gap against the measured value, and
// electrolyte-free water clearance from the urine sample.
func Osmolality(in OsmolalityInput) OsmolalityResult {
	calculated := 2*in.Sodium + in.Glucose/18 + in.Urea/2.8 + in.Ethanol/4.6 + in.Mannitol/18

	gap := 0.0
	if in.MeasuredOsm > 0 {
		gap = in.MeasuredOsm - (2*in.Sodium + in.Glucose/18 + in.Urea/2.8)
	}

	fwc := 0.0
	serumOsm := in.MeasuredOsm
	if serumOsm <= 0 {
		serumOsm = calculated
	}
	if in.UrineOsm > 0 && serumOsm > 0 {
		fwc = (in.UrineOutput / 1000) * (1 - in.UrineOsm/serumOsm)
	}

	classification := "normal"
	switch {
	case calculated < 280:
		classification = "hypo-osmolar"
	case calculated > 295:
		classification = "hyper-osmolar"
	}

	return OsmolalityResult{
		Calculated:         Round1(calculated),
		OsmolarGap:         Round1(gap),
		FreeWaterClearance: Round2(fwc),
		Classification:     classification,
	}
}
