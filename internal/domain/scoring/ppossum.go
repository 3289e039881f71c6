package scoring

import "math"

// PossumInput carries the twelve physiological and six operative P-POSSUM
// variables. The categorical fields (cardiac signs, respiratory history, ECG,
// operative severity, soiling, malignancy, urgency) are the exponential point
// values of the chosen option (1, 2, 4 or 8), passed through unchanged.
type PossumInput struct {
	Age                float64 `json:"age"`
	CardiacSigns       float64 `json:"cardiac_signs"`
	RespiratoryHistory float64 `json:"respiratory_history"`
	SBP                float64 `json:"sbp"`
	Pulse              float64 `json:"pulse"`
	GCS                float64 `json:"gcs"`
	Hemoglobin         float64 `json:"hemoglobin"` // g/dL
	WBC                float64 `json:"wbc"`        // x10^3/mm3
	Urea               float64 `json:"urea"`       // mmol/L
	Sodium             float64 `json:"sodium"`
	Potassium          float64 `json:"potassium"`
	ECGChanges         float64 `json:"ecg_changes"`

	OperativeSeverity  float64 `json:"operative_severity"`
	MultipleProcedures float64 `json:"multiple_procedures"`
	BloodLoss          float64 `json:"blood_loss"` // mL
	PeritonealSoiling  float64 `json:"peritoneal_soiling"`
	Malignancy         float64 `json:"malignancy"`
	Urgency            float64 `json:"urgency"`
}

// PossumResult is the computed P-POSSUM pair of sub-scores with the
// Portsmouth-equation mortality estimate.
type PossumResult struct {
	PhysiologicalScore int     `json:"physiological_score"`
	OperativeScore     int     `json:"operative_score"`
	Mortality          float64 `json:"mortality"` // percent
}

// PPossum scores the input per the Portsmouth POSSUM tables.
func PPossum(in PossumInput) PossumResult {
	ps := possumPhysiological(in)
	os := possumOperative(in)

	// Mortality keeps full precision; low-risk procedures sit well below
	// 0.1% and rounding here would collapse them to zero.
	logit := -9.37 + 0.19*math.Log(float64(ps)) + 0.15*math.Log(float64(os))
	mortality := 1 / (1 + math.Exp(-logit)) * 100

	return PossumResult{PhysiologicalScore: ps, OperativeScore: os, Mortality: mortality}
}

func possumPhysiological(in PossumInput) int {
	s := 0

	switch {
	case in.Age <= 60:
		s += 1
	case in.Age <= 70:
		s += 2
	default:
		s += 4
	}

	s += int(in.CardiacSigns)
	s += int(in.RespiratoryHistory)

	switch {
	case in.SBP >= 110 && in.SBP <= 130:
		s += 1
	case (in.SBP >= 100 && in.SBP < 110) || (in.SBP > 130 && in.SBP <= 170):
		s += 2
	case in.SBP >= 90 && in.SBP <= 99:
		s += 4
	default:
		s += 8
	}

	switch {
	case in.Pulse >= 50 && in.Pulse <= 80:
		s += 1
	case (in.Pulse >= 40 && in.Pulse < 50) || (in.Pulse > 80 && in.Pulse <= 100):
		s += 2
	case in.Pulse > 100 && in.Pulse <= 120:
		s += 4
	default:
		s += 8
	}

	switch {
	case in.GCS == 15:
		s += 1
	case in.GCS >= 12:
		s += 2
	case in.GCS >= 9:
		s += 4
	default:
		s += 8
	}

	switch {
	case in.Hemoglobin >= 13 && in.Hemoglobin <= 16:
		s += 1
	case (in.Hemoglobin >= 11.5 && in.Hemoglobin < 13) || (in.Hemoglobin > 16 && in.Hemoglobin <= 17):
		s += 2
	case (in.Hemoglobin >= 10 && in.Hemoglobin < 11.5) || (in.Hemoglobin > 17 && in.Hemoglobin <= 18):
		s += 4
	default:
		s += 8
	}

	switch {
	case in.WBC >= 4 && in.WBC <= 10:
		s += 1
	case (in.WBC > 10 && in.WBC <= 20) || (in.WBC >= 3.1 && in.WBC < 4):
		s += 2
	default:
		s += 4
	}

	switch {
	case in.Urea <= 7.5:
		s += 1
	case in.Urea <= 10:
		s += 2
	case in.Urea <= 15:
		s += 4
	default:
		s += 8
	}

	switch {
	case in.Sodium >= 136:
		s += 1
	case in.Sodium >= 131:
		s += 2
	case in.Sodium >= 126:
		s += 4
	default:
		s += 8
	}

	switch {
	case in.Potassium >= 3.5 && in.Potassium <= 5:
		s += 1
	case (in.Potassium >= 3.2 && in.Potassium < 3.5) || (in.Potassium > 5 && in.Potassium <= 5.3):
		s += 2
	case (in.Potassium >= 2.9 && in.Potassium < 3.2) || (in.Potassium > 5.3 && in.Potassium <= 5.9):
		s += 4
	default:
		s += 8
	}

	s += int(in.ECGChanges)
	return s
}

func possumOperative(in PossumInput) int {
	s := 0
	s += int(in.OperativeSeverity)
	s += int(in.MultipleProcedures)

	switch {
	case in.BloodLoss <= 100:
		s += 1
	case in.BloodLoss <= 500:
		s += 2
	case in.BloodLoss <= 999:
		s += 4
	default:
		s += 8
	}

	s += int(in.PeritonealSoiling)
	s += int(in.Malignancy)
	s += int(in.Urgency)
	return s
}
