package patient

import (
	"encoding/json"
	"errors"
	"testing"
)

type countingNotifier struct {
	count int
}

func (n *countingNotifier) Notify() { n.count++ }

func seededService() (*Service, *countingNotifier) {
	c := NewCollection()
	c.Restore(SeedSnapshot())
	n := &countingNotifier{}
	return NewService(c, n), n
}

func TestService_CreateNotifies(t *testing.T) {
	svc, n := seededService()
	id, rec := svc.Create()
	if id == "" || rec == nil {
		t.Fatal("create returned nothing")
	}
	if n.count != 1 {
		t.Errorf("notify count = %d, want 1", n.count)
	}
}

func TestService_Get(t *testing.T) {
	svc, _ := seededService()
	rec, err := svc.Get("bed-08")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "João Silva Santos" {
		t.Errorf("name = %q", rec.Name)
	}

	if _, err := svc.Get("bed-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestService_Update_RecomputesInfusionOnDoseChange(t *testing.T) {
	svc, n := seededService()
	// bed-08: weight 75, fentanyl concentration 50. Dose 3.0 -> 4.50 mL/h.
	rec, err := svc.Update("bed-08", map[string]json.RawMessage{
		"fentanyl_dose": json.RawMessage(`"3.0"`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.FentanylInfusion != "4.50" {
		t.Errorf("fentanyl infusion = %q, want 4.50", rec.FentanylInfusion)
	}
	// Other drugs keep their charted rates.
	if rec.PropofolInfusion != "15.00" {
		t.Errorf("propofol infusion = %q, want untouched 15.00", rec.PropofolInfusion)
	}
	if n.count != 1 {
		t.Errorf("notify count = %d, want 1", n.count)
	}
}

func TestService_Update_WeightChangeRecomputesAllDrugs(t *testing.T) {
	svc, _ := seededService()
	// bed-08 to 80 kg: fentanyl 2.5*80/50 = 4.00, propofol 2*80/10 = 16.00.
	rec, err := svc.Update("bed-08", map[string]json.RawMessage{
		"weight": json.RawMessage(`"80"`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.FentanylInfusion != "4.00" {
		t.Errorf("fentanyl infusion = %q, want 4.00", rec.FentanylInfusion)
	}
	if rec.PropofolInfusion != "16.00" {
		t.Errorf("propofol infusion = %q, want 16.00", rec.PropofolInfusion)
	}
	// Zero-dose drugs keep their previous rate rather than recomputing.
	if rec.DexmedetomidineInfusion != "" {
		t.Errorf("dexmedetomidine infusion = %q, want untouched", rec.DexmedetomidineInfusion)
	}
}

func TestService_Update_WeightFallback(t *testing.T) {
	svc, _ := seededService()
	if _, err := svc.Update("bed-08", map[string]json.RawMessage{
		"weight": json.RawMessage(`""`),
	}); err != nil {
		t.Fatal(err)
	}
	// With no weight the 70 kg reference applies: 2.5*70/50 = 3.50.
	rec, _ := svc.Get("bed-08")
	if rec.FentanylInfusion != "3.50" {
		t.Errorf("fentanyl infusion = %q, want 3.50 from 70 kg fallback", rec.FentanylInfusion)
	}
}

func TestService_Update_AbsentID(t *testing.T) {
	svc, n := seededService()
	rec, err := svc.Update("bed-missing", map[string]json.RawMessage{
		"plan": json.RawMessage(`"x"`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Error("absent id should return nil record")
	}
	if n.count != 0 {
		t.Errorf("no-op should not notify, count = %d", n.count)
	}
}

func TestService_DeleteAndActivate(t *testing.T) {
	svc, _ := seededService()

	activeID, err := svc.Delete("bed-08")
	if err != nil {
		t.Fatal(err)
	}
	if activeID != "bed-12" {
		t.Errorf("active after delete = %q, want bed-12", activeID)
	}

	if _, err := svc.Delete("bed-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if got := svc.Activate("bed-12"); got != "bed-12" {
		t.Errorf("activate = %q", got)
	}
	if got := svc.Activate("bed-missing"); got != "bed-12" {
		t.Errorf("activating absent id = %q, want bed-12 kept", got)
	}
}

func TestService_Panel_SeedScores(t *testing.T) {
	svc, _ := seededService()
	panel, err := svc.Panel("bed-08")
	if err != nil {
		t.Fatal(err)
	}

	if panel.Sofa.Total != 15 {
		t.Errorf("SOFA = %d, want 15", panel.Sofa.Total)
	}
	if panel.Sofa.Interpretation != "very high risk" {
		t.Errorf("SOFA interpretation = %q", panel.Sofa.Interpretation)
	}
	if panel.GCS.Total != 3 {
		t.Errorf("GCS = %d, want 3", panel.GCS.Total)
	}
	if !panel.QSofa.HighRisk {
		t.Error("qSOFA 3 should be high risk")
	}

	// PCV 27/12 -> driving pressure 15; PaO2 84 on 60% -> P/F 140.
	if panel.Ventilation.DrivingPressure != 15 {
		t.Errorf("driving pressure = %v, want 15", panel.Ventilation.DrivingPressure)
	}
	if panel.Ventilation.PFRatio != 140 {
		t.Errorf("P/F = %v, want 140", panel.Ventilation.PFRatio)
	}
	if panel.Ventilation.PFSeverity != "moderate ARDS" {
		t.Errorf("P/F severity = %q", panel.Ventilation.PFSeverity)
	}

	// Inputs 1000+48+400 = 1448 (plus the 0.9 from "SF 0.9%"), outputs 470.
	if panel.Fluids.Outputs != 470 {
		t.Errorf("outputs = %v, want 470", panel.Fluids.Outputs)
	}
	if panel.Fluids.Trend != "positive" {
		t.Errorf("trend = %q, want positive", panel.Fluids.Trend)
	}

	if panel.Sedation.CPOT.Total != 3 {
		t.Errorf("CPOT = %d, want 3", panel.Sedation.CPOT.Total)
	}
	if panel.Sedation.RASS.Interpretation != "light sedation" {
		t.Errorf("RASS interpretation = %q", panel.Sedation.RASS.Interpretation)
	}
}
