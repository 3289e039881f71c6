package scoring

// Ventilation mechanics derived from charted ventilator settings and blood
// gases. All pressures in cmH2O, volumes in mL, flow in L/min, FiO2 as a
// percentage (21-100).

// DrivingPressure returns plateau minus PEEP, or 0 when the inputs are
// inconsistent (plateau not above PEEP).
func DrivingPressure(plateau, peep float64) float64 {
	if plateau > peep {
		return plateau - peep
	}
	return 0
}

// IdealBodyWeight computes the Devine ideal body weight in kg from height in
// cm. Heights at or below 152.4 cm (the formula's 5-foot base) return 0.
func IdealBodyWeight(height float64, male bool) float64 {
	if height <= 152.4 {
		return 0
	}
	base := 45.5
	if male {
		base = 50.0
	}
	return base + 0.91*(height-152.4)
}

// ProtectiveTidalVolumes returns the 6 and 8 mL/kg lung-protective tidal
// volume targets for an ideal body weight.
func ProtectiveTidalVolumes(ibw float64) (low, high float64) {
	return ibw * 6, ibw * 8
}

// PFRatio computes PaO2/FiO2. FiO2 below room air (21%) or a missing PaO2
// yields 0, meaning not computable.
func PFRatio(pao2, fio2 float64) float64 {
	if pao2 > 0 && fio2 >= 21 {
		return pao2 / (fio2 / 100)
	}
	return 0
}

// PFSeverity classifies a P/F ratio by the Berlin ARDS bands. A ratio of 0
// (not computable) has no classification.
func PFSeverity(ratio float64) string {
	switch {
	case ratio <= 0:
		return ""
	case ratio < 100:
		return "severe ARDS"
	case ratio < 200:
		return "moderate ARDS"
	case ratio < 300:
		return "mild ARDS"
	default:
		return "normal"
	}
}

// DynamicCompliance returns tidal volume over (peak minus PEEP), in mL/cmH2O.
func DynamicCompliance(tidalVolume, peak, peep float64) float64 {
	if tidalVolume > 0 && peak > peep {
		return tidalVolume / (peak - peep)
	}
	return 0
}

// AirwayResistance returns (peak minus plateau) over inspiratory flow in L/s,
// in cmH2O/L/s.
func AirwayResistance(peak, plateau, flow float64) float64 {
	if flow > 0 && peak > plateau {
		return (peak - plateau) / (flow / 60)
	}
	return 0
}

// MinuteVolume returns tidal volume times respiratory rate, in L/min.
func MinuteVolume(tidalVolume, respRate float64) float64 {
	if tidalVolume > 0 && respRate > 0 {
		return tidalVolume * respRate / 1000
	}
	return 0
}

// OxygenationIndex returns (mean airway pressure x FiO2) / PaO2.
func OxygenationIndex(meanAirwayPressure, fio2, pao2 float64) float64 {
	if meanAirwayPressure > 0 && fio2 > 0 && pao2 > 0 {
		return meanAirwayPressure * fio2 / pao2
	}
	return 0
}

// OISeverity classifies an oxygenation index. An OI of 0 (not computable)
// has no classification.
func OISeverity(oi float64) string {
	switch {
	case oi <= 0:
		return ""
	case oi >= 25:
		return "very severe, consider ECMO"
	case oi >= 16:
		return "severe"
	case oi >= 8:
		return "moderate"
	default:
		return "mild"
	}
}
