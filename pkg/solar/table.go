package solar

import (
	"fmt"
	"strings"
)

var tableRule = strings.Repeat("-", 21)

// RenderTable lists every sample's time and angle, bracketed by a header and
// horizontal rules. An empty profile yields only the header and rules.
func RenderTable(profile Profile) []string {
	lines := make([]string, 0, len(profile)+3)
	lines = append(lines, fmt.Sprintf("%-10s %10s", "Time (UTC)", "Angle (Deg)"), tableRule)
	for _, sample := range profile {
		lines = append(lines, fmt.Sprintf("%-10s %10.2f", sample.Time, sample.AngleDeg))
	}
	return append(lines, tableRule)
}
