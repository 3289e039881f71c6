package scoring

// DeadSpaceInput carries ventilator and capnography values for the dead
// space and alveolar ventilation calculator.
type DeadSpaceInput struct {
	TidalVolume float64 `json:"tidal_volume"` // mL
	RespRate    float64 `json:"resp_rate"`
	Weight      float64 `json:"weight"` // kg
	Height      float64 `json:"height"` // cm
	Male        bool    `json:"male"`
	PaCO2       float64 `json:"paco2"`
	EtCO2       float64 `json:"etco2"`
}

// DeadSpaceResult is the computed ventilation panel.
type DeadSpaceResult struct {
	MinuteVentilation    float64 `json:"minute_ventilation"` // L/min
	AnatomicalDeadSpace  float64 `json:"anatomical_dead_space"`
	PhysiologicDeadSpace float64 `json:"physiologic_dead_space"` // mL
	AlveolarVentilation  float64 `json:"alveolar_ventilation"`   // L/min
	VdVtPercent          float64 `json:"vdvt_percent"`
	VdVtElevated         bool    `json:"vdvt_elevated"`
	PredictedBodyWeight  float64 `json:"predicted_body_weight"`
	VtPerKgPBW           float64 `json:"vt_per_kg_pbw"`
}

// DeadSpace computes physiologic dead space by the Bohr-Enghoff method when
// both PaCO2 and EtCO2 are charted, falling back to the 2.2 mL/kg anatomical
// estimate otherwise.
func DeadSpace(in DeadSpaceInput) DeadSpaceResult {
	minuteVent := in.TidalVolume * in.RespRate / 1000
	anatomical := 2.2 * in.Weight

	physiologic := anatomical
	if in.PaCO2 > 0 && in.EtCO2 > 0 {
		physiologic = in.TidalVolume * ((in.PaCO2 - in.EtCO2) / in.PaCO2)
	}

	alveolar := (in.TidalVolume - physiologic) * in.RespRate / 1000

	vdvt := 0.0
	if in.TidalVolume > 0 {
		vdvt = physiologic / in.TidalVolume * 100
	}

	pbw := 0.0
	if in.Height > 152.4 {
		base := 45.5
		if in.Male {
			base = 50.0
		}
		pbw = base + 0.91*(in.Height-152.4)
	}

	vtPerKg := 0.0
	if pbw > 0 {
		vtPerKg = in.TidalVolume / pbw
	}

	return DeadSpaceResult{
		MinuteVentilation:    Round2(minuteVent),
		AnatomicalDeadSpace:  Round1(anatomical),
		PhysiologicDeadSpace: Round1(physiologic),
		AlveolarVentilation:  Round2(alveolar),
		VdVtPercent:          Round1(vdvt),
		VdVtElevated:         vdvt > 40,
		PredictedBodyWeight:  Round1(pbw),
		VtPerKgPBW:           Round1(vtPerKg),
	}
}
