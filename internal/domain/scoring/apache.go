package scoring

// ApacheInput carries the worst values of the first 24 ICU hours.
type ApacheInput struct {
	Age           float64 `json:"age"`
	Temp          float64 `json:"temp"` // Celsius
	MAP           float64 `json:"map"`  // mmHg
	HeartRate     float64 `json:"heart_rate"`
	RespRate      float64 `json:"resp_rate"`
	PaO2          float64 `json:"pao2"`
	FiO2          float64 `json:"fio2"` // percent
	PH            float64 `json:"ph"`
	Sodium        float64 `json:"sodium"`
	Potassium     float64 `json:"potassium"`
	Creatinine    float64 `json:"creatinine"`
	Hematocrit    float64 `json:"hematocrit"`
	WBC           float64 `json:"wbc"` // x10^3/mm3
	GCS           float64 `json:"gcs"`
	ChronicHealth float64 `json:"chronic_health"` // 0, 2 or 5 points
}

// ApacheResult is the computed APACHE II score with its estimated hospital
// mortality.
type ApacheResult struct {
	Score     int     `json:"score"`
	Mortality float64 `json:"mortality"` // percent
}

// ApacheII scores the input per the Knaus tables, band by band.
func ApacheII(in ApacheInput) ApacheResult {
	s := 0

	switch {
	case in.Age >= 75:
		s += 6
	case in.Age >= 65:
		s += 5
	case in.Age >= 55:
		s += 3
	case in.Age >= 45:
		s += 2
	}

	switch {
	case in.Temp >= 41 || in.Temp < 30:
		s += 4
	case in.Temp >= 39 || in.Temp <= 31.9:
		s += 3
	case in.Temp <= 33.9:
		s += 2
	case (in.Temp >= 38.5 && in.Temp <= 38.9) || (in.Temp >= 34 && in.Temp <= 35.9):
		s += 1
	}

	switch {
	case in.MAP >= 160:
		s += 4
	case in.MAP >= 130:
		s += 3
	case in.MAP >= 110:
		s += 2
	case in.MAP <= 49:
		s += 4
	case in.MAP <= 69:
		s += 2
	}

	switch {
	case in.HeartRate >= 180:
		s += 4
	case in.HeartRate >= 140:
		s += 3
	case in.HeartRate >= 110:
		s += 2
	case in.HeartRate <= 39:
		s += 4
	case in.HeartRate <= 54:
		s += 3
	case in.HeartRate <= 69:
		s += 2
	}

	switch {
	case in.RespRate >= 50:
		s += 4
	case in.RespRate >= 35:
		s += 3
	case in.RespRate >= 25:
		s += 1
	case in.RespRate <= 5:
		s += 4
	case in.RespRate <= 9:
		s += 2
	case in.RespRate <= 11:
		s += 1
	}

	if in.FiO2 >= 50 {
		// High FiO2: use the alveolar-arterial gradient.
		aaGradient := (in.FiO2 * 713 / 100) - in.PaO2 - (in.PH * 1.25)
		switch {
		case aaGradient >= 500:
			s += 4
		case aaGradient >= 350:
			s += 3
		case aaGradient >= 200:
			s += 2
		}
	} else {
		switch {
		case in.PaO2 <= 55:
			s += 4
		case in.PaO2 <= 60:
			s += 3
		case in.PaO2 <= 70:
			s += 1
		}
	}

	switch {
	case in.PH >= 7.7 || in.PH < 7.15:
		s += 4
	case in.PH >= 7.6 || in.PH <= 7.24:
		s += 3
	case in.PH <= 7.32:
		s += 2
	case in.PH >= 7.5:
		s += 1
	}

	switch {
	case in.Sodium >= 180 || in.Sodium <= 110:
		s += 4
	case in.Sodium >= 160 || in.Sodium <= 119:
		s += 3
	case in.Sodium >= 155 || in.Sodium <= 120:
		s += 2
	case in.Sodium >= 150:
		s += 1
	}

	switch {
	case in.Potassium >= 7 || in.Potassium < 2.5:
		s += 4
	case in.Potassium >= 6:
		s += 3
	case in.Potassium <= 2.9:
		s += 2
	case in.Potassium >= 5.5 || (in.Potassium >= 3 && in.Potassium <= 3.4):
		s += 1
	}

	switch {
	case in.Creatinine >= 3.5:
		s += 4
	case in.Creatinine >= 2:
		s += 3
	case in.Creatinine >= 1.5:
		s += 2
	case in.Creatinine <= 0.6:
		s += 2
	}

	switch {
	case in.Hematocrit >= 60 || in.Hematocrit < 20:
		s += 4
	case in.Hematocrit >= 50 || in.Hematocrit <= 29.9:
		s += 2
	case in.Hematocrit >= 46:
		s += 1
	}

	switch {
	case in.WBC >= 40 || in.WBC < 1:
		s += 4
	case in.WBC >= 20 || in.WBC <= 2.9:
		s += 2
	case in.WBC >= 15:
		s += 1
	}

	s += int(15 - in.GCS)
	s += int(in.ChronicHealth)

	return ApacheResult{Score: s, Mortality: apacheMortality(s)}
}

func apacheMortality(score int) float64 {
	switch {
	case score <= 4:
		return 4
	case score <= 9:
		return 8
	case score <= 14:
		return 15
	case score <= 19:
		return 25
	case score <= 24:
		return 40
	case score <= 29:
		return 55
	case score <= 34:
		return 73
	default:
		return 85
	}
}
