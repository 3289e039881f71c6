package scoring

import "testing"

func TestApacheII_HealthyAdult(t *testing.T) {
	got := ApacheII(ApacheInput{
		Age:        30,
		Temp:       37,
		MAP:        90,
		HeartRate:  80,
		RespRate:   14,
		PaO2:       95,
		FiO2:       21,
		PH:         7.4,
		Sodium:     140,
		Potassium:  4.0,
		Creatinine: 1.0,
		Hematocrit: 42,
		WBC:        8,
		GCS:        15,
	})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Mortality != 4 {
		t.Errorf("mortality = %v, want 4", got.Mortality)
	}
}

func TestApacheII_SepticShock(t *testing.T) {
	// age 66 (+5), temp 39.2 (+3), MAP 65 (+2), HR 115 (+2), RR 28 (+1),
	// A-a gradient 334.7 on 60% FiO2 (+2), pH 7.30 (+2), K 3.2 (+1),
	// Cr 2.1 (+3), WBC 18 (+1), GCS 10 (+5), chronic health (+5).
	got := ApacheII(ApacheInput{
		Age:           66,
		Temp:          39.2,
		MAP:           65,
		HeartRate:     115,
		RespRate:      28,
		PaO2:          84,
		FiO2:          60,
		PH:            7.30,
		Sodium:        148,
		Potassium:     3.2,
		Creatinine:    2.1,
		Hematocrit:    30,
		WBC:           18,
		GCS:           10,
		ChronicHealth: 5,
	})
	if got.Score != 32 {
		t.Errorf("score = %d, want 32", got.Score)
	}
	if got.Mortality != 73 {
		t.Errorf("mortality = %v, want 73", got.Mortality)
	}
}

func TestApacheII_LowFiO2UsesPaO2(t *testing.T) {
	base := ApacheInput{
		Age: 30, Temp: 37, MAP: 90, HeartRate: 80, RespRate: 14,
		PH: 7.4, Sodium: 140, Potassium: 4, Creatinine: 1,
		Hematocrit: 42, WBC: 8, GCS: 15,
	}

	base.FiO2 = 40
	base.PaO2 = 52
	if got := ApacheII(base); got.Score != 4 {
		t.Errorf("PaO2 52 on 40%% FiO2: score = %d, want 4", got.Score)
	}

	base.PaO2 = 58
	if got := ApacheII(base); got.Score != 3 {
		t.Errorf("PaO2 58: score = %d, want 3", got.Score)
	}

	base.PaO2 = 65
	if got := ApacheII(base); got.Score != 1 {
		t.Errorf("PaO2 65: score = %d, want 1", got.Score)
	}
}

func TestApacheMortalityBands(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 4}, {4, 4}, {5, 8}, {9, 8}, {10, 15}, {14, 15},
		{15, 25}, {19, 25}, {20, 40}, {24, 40}, {25, 55}, {29, 55},
		{30, 73}, {34, 73}, {35, 85}, {50, 85},
	}
	for _, tt := range tests {
		if got := apacheMortality(tt.score); got != tt.want {
			t.Errorf("apacheMortality(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
