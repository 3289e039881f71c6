package scoring

import "math"

// Saps3Input carries admission data for the SAPS 3 score. The origin,
// admission category and admission reason fields are the pre-assigned point
// values of the chosen option, passed through unchanged.
type Saps3Input struct {
	Age             float64 `json:"age"`
	Comorbidities   float64 `json:"comorbidities"`      // points: 0, 3, 5, 6, 8 or 10
	DaysBeforeICU   float64 `json:"days_before_icu"`    // hospital stay before admission
	AdmissionOrigin float64 `json:"admission_origin"`   // points
	Category        float64 `json:"admission_category"` // points
	Reason          float64 `json:"admission_reason"`   // points
	Temp            float64 `json:"temp"`
	SBP             float64 `json:"sbp"`
	HeartRate       float64 `json:"heart_rate"`
	GCS             float64 `json:"gcs"`
	Bilirubin       float64 `json:"bilirubin"`
	Creatinine      float64 `json:"creatinine"`
	Platelets       float64 `json:"platelets"` // x10^3/mm3
	WBC             float64 `json:"wbc"`
	PH              float64 `json:"ph"`
	PFRatio         float64 `json:"pf_ratio"`
	Ventilated      bool    `json:"ventilated"`
}

// Saps3Result is the computed SAPS 3 score with its estimated hospital
// mortality from the global equation.
type Saps3Result struct {
	Score     int     `json:"score"`
	Mortality float64 `json:"mortality"` // percent
}

// Saps3 scores the input. The score starts from the 16-point baseline every
// admission carries.
func Saps3(in Saps3Input) Saps3Result {
	s := 16

	switch {
	case in.Age < 40:
	case in.Age < 60:
		s += 5
	case in.Age < 70:
		s += 9
	case in.Age < 75:
		s += 13
	case in.Age < 80:
		s += 15
	default:
		s += 18
	}

	s += int(in.Comorbidities)

	switch {
	case in.DaysBeforeICU < 14:
	case in.DaysBeforeICU < 28:
		s += 6
	default:
		s += 7
	}

	s += int(in.AdmissionOrigin)
	s += int(in.Category)
	s += int(in.Reason)

	if in.Temp < 35 || in.Temp >= 40 {
		s += 7
	}

	switch {
	case in.SBP < 40:
		s += 11
	case in.SBP < 70:
		s += 8
	case in.SBP < 120:
		s += 3
	case in.SBP < 160:
	default:
		s += 3
	}

	switch {
	case in.HeartRate < 120:
	case in.HeartRate < 160:
		s += 5
	default:
		s += 7
	}

	switch {
	case in.GCS < 3:
		s += 26
	case in.GCS < 7:
		s += 13
	case in.GCS < 9:
		s += 7
	case in.GCS < 11:
		s += 5
	case in.GCS < 14:
		s += 2
	}

	switch {
	case in.Bilirubin < 2:
	case in.Bilirubin < 6:
		s += 4
	default:
		s += 5
	}

	switch {
	case in.Creatinine < 1.2:
	case in.Creatinine < 2:
		s += 2
	case in.Creatinine < 3.5:
		s += 7
	default:
		s += 8
	}

	switch {
	case in.Platelets < 20:
		s += 13
	case in.Platelets < 50:
		s += 8
	case in.Platelets < 100:
		s += 5
	}

	if in.WBC >= 15 {
		s += 2
	}
	if in.PH < 7.25 {
		s += 3
	}

	switch {
	case in.PFRatio < 100:
		s += 11
	case in.PFRatio < 200:
		s += 9
	case in.PFRatio < 300:
		s += 6
	}

	if in.Ventilated {
		s += 5
	}

	return Saps3Result{Score: s, Mortality: saps3Mortality(s)}
}

// saps3Mortality applies the SAPS 3 global logistic equation.
func saps3Mortality(score int) float64 {
	logit := -32.6659 + math.Log(float64(score)+20.5958)*7.3068
	return Round1(math.Exp(logit) / (1 + math.Exp(logit)) * 100)
}
