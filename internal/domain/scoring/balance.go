package scoring

import (
	"regexp"
	"strconv"
)

var numberToken = regexp.MustCompile(`[\d.]+`)

// ExtractSum pulls every numeric token out of a free-text fluid blob
// ("SF 500ml\nNaCl 250ml") and returns their sum. Tokens with trailing
// garbage are parsed by their longest valid numeric prefix; tokens with no
// valid prefix contribute nothing.
func ExtractSum(text string) float64 {
	total := 0.0
	for _, tok := range numberToken.FindAllString(text, -1) {
		total += parseLeadingFloat(tok)
	}
	return total
}

// parseLeadingFloat parses the longest numeric prefix of s ("1.2.3" -> 1.2).
func parseLeadingFloat(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Walk back to the longest parseable prefix.
	for i := len(s) - 1; i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return f
		}
	}
	return 0
}

// Balance computes net fluid balance (inputs minus outputs) from the two
// free-text blobs.
func Balance(inputs, outputs string) float64 {
	return ExtractSum(inputs) - ExtractSum(outputs)
}

// BalanceTier classifies the magnitude of a net balance.
func BalanceTier(balance float64) string {
	abs := balance
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 500:
		return "balanced"
	case abs < 1000:
		return "moderate imbalance"
	default:
		return "high imbalance"
	}
}

// BalanceTrend classifies the direction of a net balance.
func BalanceTrend(balance float64) string {
	switch {
	case balance > 100:
		return "positive"
	case balance < -100:
		return "negative"
	default:
		return "stable"
	}
}
