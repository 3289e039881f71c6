package scoring

import "testing"

func TestInfusionRate(t *testing.T) {
	// fentanyl 2.5 mcg/kg/h at 75 kg, 50 mcg/mL -> 3.75 mL/h
	rate, ok := InfusionRate(2.5, 75, 50)
	if !ok || rate != 3.75 {
		t.Errorf("InfusionRate(2.5, 75, 50) = %v, %v, want 3.75, true", rate, ok)
	}

	// propofol 2 mg/kg/h at 75 kg, 10 mg/mL -> 15 mL/h
	rate, ok = InfusionRate(2, 75, 10)
	if !ok || rate != 15 {
		t.Errorf("InfusionRate(2, 75, 10) = %v, %v, want 15, true", rate, ok)
	}

	// rounding: 0.6 mcg/kg/h at 62 kg, 4 mcg/mL = 9.3
	rate, ok = InfusionRate(0.6, 62, 4)
	if !ok || rate != 9.3 {
		t.Errorf("InfusionRate(0.6, 62, 4) = %v, %v, want 9.3, true", rate, ok)
	}

	if _, ok := InfusionRate(0, 75, 50); ok {
		t.Error("zero dose should not produce a rate")
	}
	if _, ok := InfusionRate(2, 75, 0); ok {
		t.Error("zero concentration should not produce a rate")
	}
}

func TestCPOTInterpretation(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "adequate analgesia"},
		{2, "adequate analgesia"},
		{3, "mild pain"},
		{4, "mild pain"},
		{5, "significant pain"},
		{8, "significant pain"},
	}
	for _, tt := range tests {
		if got := CPOTInterpretation(tt.total); got != tt.want {
			t.Errorf("CPOTInterpretation(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestRASSInterpretation(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{3, "agitated"},
		{1, "agitated"},
		{0, "at goal"},
		{-1, "at goal"},
		{-2, "light sedation"},
		{-3, "oversedated"},
		{-5, "oversedated"},
	}
	for _, tt := range tests {
		if got := RASSInterpretation(tt.score); got != tt.want {
			t.Errorf("RASSInterpretation(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestFormulary(t *testing.T) {
	if len(Formulary) != 4 {
		t.Fatalf("formulary has %d drugs, want 4", len(Formulary))
	}

	fent, ok := LimitFor("fentanyl")
	if !ok {
		t.Fatal("fentanyl missing from formulary")
	}
	if fent.MinDose != 0.5 || fent.MaxDose != 10 || fent.InitialDose != 1.5 {
		t.Errorf("fentanyl limits = %+v", fent)
	}

	dex, ok := LimitFor("dexmedetomidine")
	if !ok {
		t.Fatal("dexmedetomidine missing from formulary")
	}
	if dex.MaxDose != 1.5 {
		t.Errorf("dexmedetomidine max dose = %v, want 1.5", dex.MaxDose)
	}

	if _, ok := LimitFor("ketamine"); ok {
		t.Error("unknown drug should not resolve")
	}
}
