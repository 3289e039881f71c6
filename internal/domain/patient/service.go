package patient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/icurounds/icurounds/internal/domain/scoring"
)

// ErrNotFound reports a patient id that resolves to no bed.
var ErrNotFound = errors.New("patient not found")

// Notifier receives a signal after every mutation so persistence can be
// debounced outside the request path.
type Notifier interface {
	Notify()
}

// Service wraps the collection with the mutation-side business rules:
// infusion rate recomputation and autosave signalling.
type Service struct {
	collection *Collection
	notifier   Notifier
}

func NewService(collection *Collection, notifier Notifier) *Service {
	return &Service{collection: collection, notifier: notifier}
}

// Create admits a new bed and makes it active.
func (s *Service) Create() (string, *Record) {
	id, rec := s.collection.Add()
	s.notify()
	return id, rec
}

// List returns every bed summary in stable id order.
func (s *Service) List() []Summary {
	return s.collection.List()
}

// Get returns the record for id.
func (s *Service) Get(id string) (*Record, error) {
	rec, ok := s.collection.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Update merges a partial patch into the record for id, then recomputes the
// infusion rates of any drug whose dose, concentration or shared weight the
// patch touched. An absent id is a silent no-op and returns (nil, nil).
func (s *Service) Update(id string, patch map[string]json.RawMessage) (*Record, error) {
	rec, found, err := s.collection.Update(id, patch)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	if !found {
		return nil, nil
	}

	if recomputeInfusions(rec, patch) {
		s.collection.Replace(id, rec)
	}
	s.notify()
	return rec, nil
}

// Replace swaps the whole record for id. An absent id is a silent no-op.
func (s *Service) Replace(id string, rec *Record) bool {
	ok := s.collection.Replace(id, rec)
	if ok {
		s.notify()
	}
	return ok
}

// Delete removes the bed for id and returns the resulting active id.
func (s *Service) Delete(id string) (string, error) {
	activeID, ok := s.collection.Delete(id)
	if !ok {
		return "", ErrNotFound
	}
	s.notify()
	return activeID, nil
}

// Activate selects the bed for id and returns the resulting active id.
// Selecting an absent id keeps the previous selection.
func (s *Service) Activate(id string) string {
	active := s.collection.Select(id)
	s.notify()
	return active
}

// Active returns the active record and its id.
func (s *Service) Active() (*Record, string, error) {
	rec, id, ok := s.collection.Active()
	if !ok {
		return nil, "", ErrNotFound
	}
	return rec, id, nil
}

// Panel derives the full score panel for id.
func (s *Service) Panel(id string) (*ScorePanel, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return BuildScorePanel(rec), nil
}

func (s *Service) notify() {
	if s.notifier != nil {
		s.notifier.Notify()
	}
}

// infusionDrug binds one drug's chart fields for recomputation.
type infusionDrug struct {
	doseKey, concKey     string
	dose, conc, infusion *Metric
}

func infusionDrugs(r *Record) []infusionDrug {
	return []infusionDrug{
		{"fentanyl_dose", "fentanyl_concentration", &r.FentanylDose, &r.FentanylConcentration, &r.FentanylInfusion},
		{"propofol_dose", "propofol_concentration", &r.PropofolDose, &r.PropofolConcentration, &r.PropofolInfusion},
		{"dexmedetomidine_dose", "dexmedetomidine_concentration", &r.DexmedetomidineDose, &r.DexmedetomidineConcentration, &r.DexmedetomidineInfusion},
		{"midazolam_dose", "midazolam_concentration", &r.MidazolamDose, &r.MidazolamConcentration, &r.MidazolamInfusion},
	}
}

// recomputeInfusions updates the pump rates affected by a patch. A weight
// change touches every drug; otherwise only drugs whose dose or
// concentration changed are recomputed. A drug with no dose or concentration
// keeps its previously charted rate. Reports whether anything changed.
func recomputeInfusions(rec *Record, patch map[string]json.RawMessage) bool {
	_, weightTouched := patch["weight"]

	weight := rec.Weight.Float()
	if weight <= 0 {
		weight = 70
	}

	changed := false
	for _, d := range infusionDrugs(rec) {
		_, doseTouched := patch[d.doseKey]
		_, concTouched := patch[d.concKey]
		if !weightTouched && !doseTouched && !concTouched {
			continue
		}

		rate, ok := scoring.InfusionRate(d.dose.Float(), weight, d.conc.Float())
		if !ok {
			continue
		}
		*d.infusion = Metric(fmt.Sprintf("%.2f", rate))
		changed = true
	}
	return changed
}
