package patient

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Snapshot is the persisted shape of the collection. It is exactly the
// in-memory state: the record map plus the active bed id.
type Snapshot struct {
	Patients map[string]*Record `json:"patients"`
	ActiveID string             `json:"active_id"`
}

// Collection holds every bed's record and tracks which one the clinician is
// looking at. All operations are atomic under the mutex; concurrent partial
// updates resolve last-writer-wins per field.
type Collection struct {
	mu       sync.Mutex
	patients map[string]*Record
	activeID string
}

func NewCollection() *Collection {
	return &Collection{patients: make(map[string]*Record)}
}

// Restore replaces the collection state with a previously persisted snapshot.
// An active id that no longer resolves is cleared.
func (c *Collection) Restore(s *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.patients = make(map[string]*Record, len(s.Patients))
	for id, r := range s.Patients {
		rec := *r
		c.patients[id] = &rec
	}
	c.activeID = s.ActiveID
	if _, ok := c.patients[c.activeID]; !ok {
		c.activeID = ""
	}
}

// Add admits a new bed with a blank record, makes it active, and returns its
// generated id. Ids are time-based; a collision with an existing id bumps the
// timestamp until it is unique.
func (c *Collection) Add() (string, *Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := time.Now().UnixMilli()
	id := fmt.Sprintf("bed-%d", ms)
	for _, exists := c.patients[id]; exists; _, exists = c.patients[id] {
		ms++
		id = fmt.Sprintf("bed-%d", ms)
	}

	rec := NewBlankRecord()
	c.patients[id] = rec
	c.activeID = id

	out := *rec
	return id, &out
}

// Get returns a copy of the record for id.
func (c *Collection) Get(id string) (*Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.patients[id]
	if !ok {
		return nil, false
	}
	out := *rec
	return &out, true
}

// Update applies a partial field merge to the record for id. Absent ids are a
// silent no-op (ok=false, no error). Patch values that cannot unmarshal into
// their fields return an error and leave the record untouched.
func (c *Collection) Update(id string, patch map[string]json.RawMessage) (*Record, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.patients[id]
	if !ok {
		return nil, false, nil
	}

	merged, err := mergeRecord(rec, patch)
	if err != nil {
		return nil, true, err
	}
	c.patients[id] = merged

	out := *merged
	return &out, true, nil
}

// Replace swaps the whole record for id. Absent ids are a silent no-op.
func (c *Collection) Replace(id string, rec *Record) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[id]; !ok {
		return false
	}
	stored := *rec
	c.patients[id] = &stored
	return true
}

// Delete removes the record for id. When the active bed is deleted, the
// first remaining id in sorted order becomes active; deleting the last bed
// leaves no active id. Returns the resulting active id.
func (c *Collection) Delete(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[id]; !ok {
		return c.activeID, false
	}
	delete(c.patients, id)

	if c.activeID == id {
		c.activeID = ""
		ids := c.sortedIDs()
		if len(ids) > 0 {
			c.activeID = ids[0]
		}
	}
	return c.activeID, true
}

// Select makes id the active bed. Selecting an absent id keeps the previous
// selection. Returns the resulting active id.
func (c *Collection) Select(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[id]; ok {
		c.activeID = id
	}
	return c.activeID
}

// Active returns a copy of the active record and its id.
func (c *Collection) Active() (*Record, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.patients[c.activeID]
	if !ok {
		return nil, "", false
	}
	out := *rec
	return &out, c.activeID, true
}

// List returns summaries for every bed in sorted id order.
func (c *Collection) List() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Summary, 0, len(c.patients))
	for _, id := range c.sortedIDs() {
		r := c.patients[id]
		out = append(out, Summary{
			ID:            id,
			Bed:           r.Bed,
			Name:          r.Name,
			Age:           r.Age,
			MainDiagnosis: r.MainDiagnosis,
			ICUDay:        r.ICUDay,
			Active:        id == c.activeID,
		})
	}
	return out
}

// Len returns the number of beds.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.patients)
}

// Snapshot returns a deep copy of the current state, taken atomically.
func (c *Collection) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	patients := make(map[string]*Record, len(c.patients))
	for id, r := range c.patients {
		rec := *r
		patients[id] = &rec
	}
	return &Snapshot{Patients: patients, ActiveID: c.activeID}
}

// sortedIDs must be called with the mutex held.
func (c *Collection) sortedIDs() []string {
	ids := make([]string, 0, len(c.patients))
	for id := range c.patients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// mergeRecord overlays patch fields onto a copy of rec. Unknown keys are
// ignored; known keys replace the whole field value.
func mergeRecord(rec *Record, patch map[string]json.RawMessage) (*Record, error) {
	base, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, fmt.Errorf("explode record: %w", err)
	}
	for k, v := range patch {
		fields[k] = v
	}

	mergedJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal merged record: %w", err)
	}

	merged := &Record{}
	if err := json.Unmarshal(mergedJSON, merged); err != nil {
		return nil, fmt.Errorf("unmarshal merged record: %w", err)
	}
	return merged, nil
}
