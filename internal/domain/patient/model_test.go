package patient

import (
	"encoding/json"
	"testing"
)

func TestMetric_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Metric
	}{
		{"string", `"12"`, "12"},
		{"number", `12`, "12"},
		{"decimal number", `3.75`, "3.75"},
		{"negative number", `-2`, "-2"},
		{"empty string", `""`, ""},
		{"null", `null`, ""},
		{"free text", `"pending"`, "pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metric
			if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if m != tt.want {
				t.Errorf("got %q, want %q", m, tt.want)
			}
		})
	}
}

func TestMetric_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Metric("3.75"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"3.75"` {
		t.Errorf("marshal = %s, want quoted string", b)
	}
}

func TestMetric_Float(t *testing.T) {
	tests := []struct {
		in   Metric
		want float64
	}{
		{"12", 12},
		{"3.75", 3.75},
		{"-2", -2},
		{" 8 ", 8},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := tt.in.Float(); got != tt.want {
			t.Errorf("Metric(%q).Float() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMetric_Int(t *testing.T) {
	tests := []struct {
		in   Metric
		want int
	}{
		{"12", 12},
		{"3.9", 3}, // truncation, not rounding
		{"-2", -2},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := tt.in.Int(); got != tt.want {
			t.Errorf("Metric(%q).Int() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewBlankRecord(t *testing.T) {
	r := NewBlankRecord()
	if r.Bed != "New Bed" {
		t.Errorf("bed = %q", r.Bed)
	}
	if got := r.GCSEyes.Int() + r.GCSVerbal.Int() + r.GCSMotor.Int(); got != 15 {
		t.Errorf("blank GCS total = %d, want a normal 15", got)
	}
	if r.Weight.Float() != 70 {
		t.Errorf("weight = %v, want the 70 kg reference", r.Weight.Float())
	}
	if r.FentanylConcentration.Float() != 50 {
		t.Errorf("fentanyl concentration = %v, want 50", r.FentanylConcentration.Float())
	}
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	r := NewBlankRecord()
	r.Name = "Test Patient"
	r.PaO2 = "84"

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}

	var back Record
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "Test Patient" || back.PaO2 != "84" {
		t.Errorf("round trip lost fields: %+v", back)
	}
}

func TestRecord_UnmarshalNumericInput(t *testing.T) {
	// Clients may send numbers where the chart stores strings.
	var r Record
	if err := json.Unmarshal([]byte(`{"age": 65, "weight": 75.5, "peep": "12"}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.Age != "65" {
		t.Errorf("age = %q, want 65", r.Age)
	}
	if r.Weight != "75.5" {
		t.Errorf("weight = %q, want 75.5", r.Weight)
	}
	if r.PEEP != "12" {
		t.Errorf("peep = %q, want 12", r.PEEP)
	}
}
