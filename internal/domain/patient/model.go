package patient

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Metric is a clinical value that tolerates the loose typing of bedside
// charting: it unmarshals from JSON numbers or strings and normalizes to a
// string. Accessors parse on demand and fall back to zero for empty or
// malformed input, so downstream score math never has to special-case a
// half-filled chart.
type Metric string

func (m *Metric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*m = Metric(str)
		return nil
	}
	if len(s) > 0 && (s[0] == '{' || s[0] == '[') {
		return errors.New("metric value must be a string or number")
	}
	// Raw number token, kept verbatim.
	*m = Metric(s)
	return nil
}

func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

// Float returns the parsed value, or 0 when empty or malformed.
func (m Metric) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(m)), 64)
	if err != nil {
		return 0
	}
	return f
}

// Int returns the parsed value truncated toward zero, or 0 when empty or
// malformed.
func (m Metric) Int() int {
	s := strings.TrimSpace(string(m))
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return int(m.Float())
}

func (m Metric) String() string {
	return string(m)
}

func (m Metric) IsEmpty() bool {
	return strings.TrimSpace(string(m)) == ""
}

// Record is one bed's full chart. Every numeric field is a Metric so the
// record survives round-trips through hand-typed input.
type Record struct {
	// Identity and admission
	Bed           string `json:"bed"`
	Name          string `json:"name"`
	Age           Metric `json:"age"`
	Sex           string `json:"sex"` // "M" or "F"
	AdmissionDate string `json:"admission_date"`
	ICUDay        Metric `json:"icu_day"`

	// Narrative fields, one per system, free text
	MainDiagnosis string `json:"main_diagnosis"`
	History       string `json:"history"`
	Problems      string `json:"problems"`
	Allergies     string `json:"allergies"`
	Neuro         string `json:"neuro"`
	Cardio        string `json:"cardio"`
	Resp          string `json:"resp"`
	Renal         string `json:"renal"`
	Infection     string `json:"infection"`
	Devices       string `json:"devices"`
	Pending       string `json:"pending"`
	Plan          string `json:"plan"`

	// Mechanical ventilation
	VentMode           string `json:"vent_mode"`
	TidalVolume        Metric `json:"tidal_volume"` // mL
	RespRate           Metric `json:"resp_rate"`
	PEEP               Metric `json:"peep"`
	PlateauPressure    Metric `json:"plateau_pressure"`
	PeakPressure       Metric `json:"peak_pressure"`
	FiO2               Metric `json:"fio2"`             // ventilator FiO2, percent
	InspiratoryFlow    Metric `json:"inspiratory_flow"` // L/min
	MeanAirwayPressure Metric `json:"mean_airway_pressure"`

	// Gas exchange; pf_fio2 overrides the ventilator FiO2 for P/F and OI
	PaO2   Metric `json:"pao2"`
	PFFiO2 Metric `json:"pf_fio2"`

	Height Metric `json:"height"` // cm, for ideal body weight

	// Fluid balance free-text blobs, one line per item
	FluidInputs       string `json:"fluid_inputs"`
	FluidOutputs      string `json:"fluid_outputs"`
	CumulativeBalance Metric `json:"cumulative_balance"`

	// SOFA sub-scores
	SofaResp   Metric `json:"sofa_resp"`
	SofaCoag   Metric `json:"sofa_coag"`
	SofaLiver  Metric `json:"sofa_liver"`
	SofaCardio Metric `json:"sofa_cardio"`
	SofaGCS    Metric `json:"sofa_gcs"`
	SofaRenal  Metric `json:"sofa_renal"`

	// Glasgow Coma Scale components
	GCSEyes   Metric `json:"gcs_eyes"`
	GCSVerbal Metric `json:"gcs_verbal"`
	GCSMotor  Metric `json:"gcs_motor"`

	// qSOFA components
	QSofaMental Metric `json:"qsofa_mental"`
	QSofaSBP    Metric `json:"qsofa_sbp"`
	QSofaRR     Metric `json:"qsofa_rr"`

	// CURB-65 components
	Curb65Confusion Metric `json:"curb65_confusion"`
	Curb65Urea      Metric `json:"curb65_urea"`
	Curb65RR        Metric `json:"curb65_rr"`
	Curb65BP        Metric `json:"curb65_bp"`
	Curb65Age       Metric `json:"curb65_age"`

	// MEWS components
	MewsSBP  Metric `json:"mews_sbp"`
	MewsHR   Metric `json:"mews_hr"`
	MewsRR   Metric `json:"mews_rr"`
	MewsTemp Metric `json:"mews_temp"`
	MewsAVPU Metric `json:"mews_avpu"`

	// NUTRIC components
	NutricAge      Metric `json:"nutric_age"`
	NutricApache   Metric `json:"nutric_apache"`
	NutricSofa     Metric `json:"nutric_sofa"`
	NutricComorbid Metric `json:"nutric_comorbid"`
	NutricHospital Metric `json:"nutric_hospital"`

	// Charlson comorbidity components
	CharlsonMI         Metric `json:"charlson_mi"`
	CharlsonCHF        Metric `json:"charlson_chf"`
	CharlsonPVD        Metric `json:"charlson_pvd"`
	CharlsonDementia   Metric `json:"charlson_dementia"`
	CharlsonCOPD       Metric `json:"charlson_copd"`
	CharlsonConnective Metric `json:"charlson_connective"`
	CharlsonPeptic     Metric `json:"charlson_peptic"`
	CharlsonLiverMild  Metric `json:"charlson_liver_mild"`
	CharlsonDiabetes   Metric `json:"charlson_diabetes"`
	CharlsonHemiplegia Metric `json:"charlson_hemiplegia"`
	CharlsonRenal      Metric `json:"charlson_renal"`
	CharlsonTumor      Metric `json:"charlson_tumor"`

	// Sedation and analgesia
	Weight            Metric `json:"weight"` // kg
	IntubationHours   Metric `json:"intubation_hours"`
	PredictedVentDays Metric `json:"predicted_vent_days"`
	RASS              Metric `json:"rass"`
	RASSTarget        Metric `json:"rass_target"`
	CPOTFace          Metric `json:"cpot_face"`
	CPOTMovements     Metric `json:"cpot_movements"`
	CPOTTension       Metric `json:"cpot_tension"`
	CPOTVentilator    Metric `json:"cpot_ventilator"`
	CPOTTarget        Metric `json:"cpot_target"`

	FentanylDose          Metric `json:"fentanyl_dose"` // mcg/kg/h
	FentanylConcentration Metric `json:"fentanyl_concentration"`
	FentanylInfusion      Metric `json:"fentanyl_infusion"` // mL/h

	PropofolDose          Metric `json:"propofol_dose"` // mg/kg/h
	PropofolConcentration Metric `json:"propofol_concentration"`
	PropofolInfusion      Metric `json:"propofol_infusion"`

	DexmedetomidineDose          Metric `json:"dexmedetomidine_dose"` // mcg/kg/h
	DexmedetomidineConcentration Metric `json:"dexmedetomidine_concentration"`
	DexmedetomidineInfusion      Metric `json:"dexmedetomidine_infusion"`

	MidazolamDose          Metric `json:"midazolam_dose"` // mg/kg/h
	MidazolamConcentration Metric `json:"midazolam_concentration"`
	MidazolamInfusion      Metric `json:"midazolam_infusion"`
}

// Summary is the list-endpoint projection of a record.
type Summary struct {
	ID            string `json:"id"`
	Bed           string `json:"bed"`
	Name          string `json:"name"`
	Age           Metric `json:"age"`
	MainDiagnosis string `json:"main_diagnosis"`
	ICUDay        Metric `json:"icu_day"`
	Active        bool   `json:"active"`
}

// NewBlankRecord returns the clinically neutral default chart for a freshly
// admitted bed: a normal GCS, default drug concentrations, and a 70 kg
// reference weight.
func NewBlankRecord() *Record {
	return &Record{
		Bed:           "New Bed",
		Sex:           "M",
		AdmissionDate: time.Now().Format("2006-01-02"),
		ICUDay:        "1",

		SofaResp:   "0",
		SofaCoag:   "0",
		SofaLiver:  "0",
		SofaCardio: "0",
		SofaGCS:    "0",
		SofaRenal:  "0",

		GCSEyes:   "4",
		GCSVerbal: "5",
		GCSMotor:  "6",

		Weight:            "70",
		IntubationHours:   "0",
		PredictedVentDays: "3",
		RASS:              "0",
		RASSTarget:        "-1",
		CPOTTarget:        "2",
		CPOTFace:          "0",
		CPOTMovements:     "0",
		CPOTTension:       "0",
		CPOTVentilator:    "0",

		FentanylDose:                 "0",
		FentanylConcentration:        "50",
		PropofolDose:                 "0",
		PropofolConcentration:        "10",
		DexmedetomidineDose:          "0",
		DexmedetomidineConcentration: "4",
		MidazolamDose:                "0",
		MidazolamConcentration:       "1",
	}
}
