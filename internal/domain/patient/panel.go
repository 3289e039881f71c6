package patient

import (
	"github.com/icurounds/icurounds/internal/domain/scoring"
)

// CompositeScore is a summed score family with its clinical reading.
type CompositeScore struct {
	Total          int    `json:"total"`
	Interpretation string `json:"interpretation"`
}

// VentPanel holds the derived respiratory mechanics for one record.
type VentPanel struct {
	DrivingPressure   float64 `json:"driving_pressure"`
	IdealBodyWeight   float64 `json:"ideal_body_weight"`
	TidalVolumeLow    float64 `json:"tidal_volume_low"`  // 6 mL/kg target
	TidalVolumeHigh   float64 `json:"tidal_volume_high"` // 8 mL/kg target
	VtPerKgIBW        float64 `json:"vt_per_kg_ibw"`
	PFRatio           float64 `json:"pf_ratio"`
	PFSeverity        string  `json:"pf_severity"`
	DynamicCompliance float64 `json:"dynamic_compliance"`
	AirwayResistance  float64 `json:"airway_resistance"`
	MinuteVolume      float64 `json:"minute_volume"`
	OxygenationIndex  float64 `json:"oxygenation_index"`
	OISeverity        string  `json:"oi_severity"`
}

// FluidPanel holds the parsed fluid balance for one record.
type FluidPanel struct {
	Inputs            float64 `json:"inputs"`
	Outputs           float64 `json:"outputs"`
	Balance           float64 `json:"balance"`
	Tier              string  `json:"tier"`
	Trend             string  `json:"trend"`
	CumulativeBalance float64 `json:"cumulative_balance"`
}

// SedationPanel holds the pain and sedation assessment for one record.
type SedationPanel struct {
	CPOT CompositeScore `json:"cpot"`
	RASS CompositeScore `json:"rass"`
}

// QSofaScore is the qSOFA total with its high-risk flag.
type QSofaScore struct {
	Total    int  `json:"total"`
	HighRisk bool `json:"high_risk"`
}

// Curb65Score is the CURB-65 total with its disposition.
type Curb65Score struct {
	Total       int    `json:"total"`
	Disposition string `json:"disposition"`
}

// ScorePanel is everything the engine derives from one record.
type ScorePanel struct {
	Sofa     CompositeScore `json:"sofa"`
	GCS      CompositeScore `json:"gcs"`
	QSofa    QSofaScore     `json:"qsofa"`
	Curb65   Curb65Score    `json:"curb65"`
	Mews     CompositeScore `json:"mews"`
	Nutric   CompositeScore `json:"nutric"`
	Charlson CompositeScore `json:"charlson"`

	Ventilation VentPanel     `json:"ventilation"`
	Fluids      FluidPanel    `json:"fluids"`
	Sedation    SedationPanel `json:"sedation"`
}

// BuildScorePanel derives every score, index and balance from a record.
// Blank fields count as zero, so the panel is always complete.
func BuildScorePanel(r *Record) *ScorePanel {
	sofa := scoring.Sum(
		r.SofaResp.Int(), r.SofaCoag.Int(), r.SofaLiver.Int(),
		r.SofaCardio.Int(), r.SofaGCS.Int(), r.SofaRenal.Int(),
	)
	gcs := scoring.Sum(r.GCSEyes.Int(), r.GCSVerbal.Int(), r.GCSMotor.Int())
	qsofa := scoring.Sum(r.QSofaMental.Int(), r.QSofaSBP.Int(), r.QSofaRR.Int())
	curb := scoring.Sum(
		r.Curb65Confusion.Int(), r.Curb65Urea.Int(), r.Curb65RR.Int(),
		r.Curb65BP.Int(), r.Curb65Age.Int(),
	)
	mews := scoring.Sum(
		r.MewsSBP.Int(), r.MewsHR.Int(), r.MewsRR.Int(),
		r.MewsTemp.Int(), r.MewsAVPU.Int(),
	)
	nutric := scoring.Sum(
		r.NutricAge.Int(), r.NutricApache.Int(), r.NutricSofa.Int(),
		r.NutricComorbid.Int(), r.NutricHospital.Int(),
	)
	charlson := scoring.Sum(
		r.CharlsonMI.Int(), r.CharlsonCHF.Int(), r.CharlsonPVD.Int(),
		r.CharlsonDementia.Int(), r.CharlsonCOPD.Int(), r.CharlsonConnective.Int(),
		r.CharlsonPeptic.Int(), r.CharlsonLiverMild.Int(), r.CharlsonDiabetes.Int(),
		r.CharlsonHemiplegia.Int(), r.CharlsonRenal.Int(), r.CharlsonTumor.Int(),
	)

	male := r.Sex != "F"
	ibw := scoring.IdealBodyWeight(r.Height.Float(), male)
	vtLow, vtHigh := scoring.ProtectiveTidalVolumes(ibw)

	// The blood-gas FiO2 overrides the ventilator setting when charted.
	fio2 := r.PFFiO2.Float()
	if fio2 <= 0 {
		fio2 = r.FiO2.Float()
	}
	pf := scoring.PFRatio(r.PaO2.Float(), fio2)
	oi := scoring.OxygenationIndex(r.MeanAirwayPressure.Float(), fio2, r.PaO2.Float())

	vtPerKg := 0.0
	if ibw > 0 {
		vtPerKg = scoring.Round1(r.TidalVolume.Float() / ibw)
	}

	balance := scoring.Balance(r.FluidInputs, r.FluidOutputs)

	cpot := scoring.Sum(
		r.CPOTFace.Int(), r.CPOTMovements.Int(),
		r.CPOTTension.Int(), r.CPOTVentilator.Int(),
	)
	rass := r.RASS.Int()

	return &ScorePanel{
		Sofa:     CompositeScore{Total: sofa, Interpretation: scoring.SofaInterpretation(sofa)},
		GCS:      CompositeScore{Total: gcs, Interpretation: scoring.GCSInterpretation(gcs)},
		QSofa:    QSofaScore{Total: qsofa, HighRisk: scoring.QSofaHighRisk(qsofa)},
		Curb65:   Curb65Score{Total: curb, Disposition: scoring.Curb65Disposition(curb)},
		Mews:     CompositeScore{Total: mews, Interpretation: mewsInterpretation(mews)},
		Nutric:   CompositeScore{Total: nutric, Interpretation: nutricInterpretation(nutric)},
		Charlson: CompositeScore{Total: charlson, Interpretation: charlsonInterpretation(charlson)},

		Ventilation: VentPanel{
			DrivingPressure:   scoring.DrivingPressure(r.PlateauPressure.Float(), r.PEEP.Float()),
			IdealBodyWeight:   scoring.Round2(ibw),
			TidalVolumeLow:    scoring.Round1(vtLow),
			TidalVolumeHigh:   scoring.Round1(vtHigh),
			VtPerKgIBW:        vtPerKg,
			PFRatio:           scoring.Round1(pf),
			PFSeverity:        scoring.PFSeverity(pf),
			DynamicCompliance: scoring.Round1(scoring.DynamicCompliance(r.TidalVolume.Float(), r.PeakPressure.Float(), r.PEEP.Float())),
			AirwayResistance:  scoring.Round1(scoring.AirwayResistance(r.PeakPressure.Float(), r.PlateauPressure.Float(), r.InspiratoryFlow.Float())),
			MinuteVolume:      scoring.Round2(scoring.MinuteVolume(r.TidalVolume.Float(), r.RespRate.Float())),
			OxygenationIndex:  scoring.Round1(oi),
			OISeverity:        scoring.OISeverity(oi),
		},

		Fluids: FluidPanel{
			Inputs:            scoring.ExtractSum(r.FluidInputs),
			Outputs:           scoring.ExtractSum(r.FluidOutputs),
			Balance:           balance,
			Tier:              scoring.BalanceTier(balance),
			Trend:             scoring.BalanceTrend(balance),
			CumulativeBalance: r.CumulativeBalance.Float(),
		},

		Sedation: SedationPanel{
			CPOT: CompositeScore{Total: cpot, Interpretation: scoring.CPOTInterpretation(cpot)},
			RASS: CompositeScore{Total: rass, Interpretation: scoring.RASSInterpretation(rass)},
		},
	}
}

func mewsInterpretation(total int) string {
	switch {
	case total >= 5:
		return "high risk, urgent review"
	case total >= 3:
		return "medium risk"
	default:
		return "low risk"
	}
}

func nutricInterpretation(total int) string {
	if total >= 5 {
		return "high nutritional risk"
	}
	return "low nutritional risk"
}

func charlsonInterpretation(total int) string {
	switch {
	case total == 0:
		return "no comorbidity burden"
	case total <= 2:
		return "mild comorbidity burden"
	case total <= 4:
		return "moderate comorbidity burden"
	default:
		return "severe comorbidity burden"
	}
}
