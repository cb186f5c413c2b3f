package solar

import (
	"fmt"
	"strconv"
	"strings"
)

// NoEventsMessage replaces the rise/set line when the summary is absent
const NoEventsMessage = "No sunrise or sunset to report today!"

// RenderSummary returns the location header followed by the rise, zenith and
// set line. Pass ok=false when the day has no reportable events.
func RenderSummary(summary Summary, ok bool, latitude, longitude float64, date string) []string {
	lines := []string{
		fmt.Sprintf("Solar profile for %s at latitude %s, longitude %s",
			date, formatCoordinate(latitude), formatCoordinate(longitude)),
	}
	if !ok {
		return append(lines, NoEventsMessage)
	}
	return append(lines, fmt.Sprintf("Sunrise: %s, Zenith: %s, Sunset: %s",
		summary.Sunrise, summary.Zenith, summary.Sunset))
}

// formatCoordinate prints the shortest decimal form that round-trips, keeping
// at least one fractional digit (0 -> "0.0", 51.5074 -> "51.5074").
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
