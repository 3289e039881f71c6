package scoring

import "math"

// CrClInput carries the demographics for the creatinine clearance and eGFR
// equations.
type CrClInput struct {
	Age        float64 `json:"age"`
	Weight     float64 `json:"weight"`     // kg
	Creatinine float64 `json:"creatinine"` // mg/dL
	Female     bool    `json:"female"`
	Black      bool    `json:"black"`
}

// CrClResult bundles the three estimates with the CKD stage derived from
// CKD-EPI.
type CrClResult struct {
	CockcroftGault   float64 `json:"cockcroft_gault"` // mL/min
	CKDEPI           float64 `json:"ckd_epi"`         // mL/min/1.73m2
	MDRD             float64 `json:"mdrd"`
	CKDStage         int     `json:"ckd_stage"`
	StageDescription string  `json:"stage_description"`
}

// CreatinineClearance computes Cockcroft-Gault, CKD-EPI (2009) and MDRD from
// one input set. A zero creatinine yields a zeroed result.
func CreatinineClearance(in CrClInput) CrClResult {
	if in.Creatinine <= 0 {
		return CrClResult{}
	}

	cg := ((140 - in.Age) * in.Weight) / (72 * in.Creatinine)
	if in.Female {
		cg *= 0.85
	}

	epi := ckdEPI(in)
	mdrd := 175 * math.Pow(in.Creatinine, -1.154) * math.Pow(in.Age, -0.203)
	if in.Female {
		mdrd *= 0.742
	}
	if in.Black {
		mdrd *= 1.212
	}

	stage, desc := ckdStage(epi)
	return CrClResult{
		CockcroftGault:   Round1(cg),
		CKDEPI:           Round1(epi),
		MDRD:             Round1(mdrd),
		CKDStage:         stage,
		StageDescription: desc,
	}
}

func ckdEPI(in CrClInput) float64 {
	kappa, alpha, sexFactor := 0.9, -0.411, 1.0
	if in.Female {
		kappa, alpha, sexFactor = 0.7, -0.329, 1.018
	}
	raceFactor := 1.0
	if in.Black {
		raceFactor = 1.159
	}
	ratio := in.Creatinine / kappa
	return 141 *
		math.Pow(math.Min(ratio, 1), alpha) *
		math.Pow(math.Max(ratio, 1), -1.209) *
		math.Pow(0.993, in.Age) *
		sexFactor * raceFactor
}

func ckdStage(gfr float64) (int, string) {
	switch {
	case gfr >= 90:
		return 1, "normal or high"
	case gfr >= 60:
		return 2, "mildly decreased"
	case gfr >= 30:
		return 3, "moderately decreased"
	case gfr >= 15:
		return 4, "severely decreased"
	default:
		return 5, "kidney failure"
	}
}
