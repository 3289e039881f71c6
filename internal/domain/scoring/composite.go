// Package scoring implements the derived-value engine: severity scores,
// ventilation mechanics, fluid balance, sedation math, and the bedside
// calculators. Every function is pure and total; missing or malformed
// inputs resolve to zero (or an empty classification) rather than errors,
// because a half-filled chart must never break the round.
package scoring

// Sum totals a family of sub-scores.
func Sum(values ...int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// SofaInterpretation bands a total SOFA score by expected mortality.
func SofaInterpretation(total int) string {
	switch {
	case total <= 6:
		return "low risk"
	case total <= 9:
		return "moderate risk"
	case total <= 12:
		return "high risk"
	default:
		return "very high risk"
	}
}

// GCSInterpretation bands a total Glasgow Coma Scale score.
func GCSInterpretation(total int) string {
	switch {
	case total >= 13:
		return "mild impairment"
	case total >= 9:
		return "moderate impairment"
	default:
		return "severe impairment"
	}
}

// QSofaHighRisk reports whether a qSOFA total flags high risk of poor
// outcome from sepsis.
func QSofaHighRisk(total int) bool {
	return total >= 2
}

// Curb65Disposition maps a CURB-65 total to the recommended level of care.
func Curb65Disposition(total int) string {
	switch {
	case total >= 3:
		return "consider ICU admission"
	case total == 2:
		return "hospital admission"
	default:
		return "outpatient treatment"
	}
}

// CamICU evaluates the CAM-ICU delirium algorithm: feature 1 (acute onset or
// fluctuating course) plus feature 2 (inattention) plus either feature 3
// (altered level of consciousness) or feature 4 (disorganized thinking).
func CamICU(acuteOnset, fluctuating, inattention, alteredConsciousness, disorganizedThinking bool) bool {
	feature1 := acuteOnset || fluctuating
	return feature1 && inattention && (alteredConsciousness || disorganizedThinking)
}
