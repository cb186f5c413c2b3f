package lunar

import (
	"fmt"
	"math"
)

// PercentString converts an illuminated fraction to a whole-number
// percentage, rounding halves to even (0.509 -> "51%", 0.125 -> "12%").
func PercentString(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.RoundToEven(fraction*100)))
}

// RenderSummary returns the one-line lunar summary for a date
func RenderSummary(phase Phase, fraction float64, date string) []string {
	return []string{
		fmt.Sprintf("Lunar profile for %s: %s (%s illuminated)", date, phase, PercentString(fraction)),
	}
}
