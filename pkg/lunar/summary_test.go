package lunar

import "testing"

func TestPercentString(t *testing.T) {
	tests := []struct {
		fraction float64
		expected string
	}{
		{0.509, "51%"},
		{0.126, "13%"},
		{0.504, "50%"},
		{0.994, "99%"},
		{0.001, "0%"},
		{0.999, "100%"},
		{0.25, "25%"},
		{0.5, "50%"},
		{0.125, "12%"}, // halves round to even
		{0.0, "0%"},
		{1.0, "100%"},
	}

	for _, tt := range tests {
		if got := PercentString(tt.fraction); got != tt.expected {
			t.Errorf("PercentString(%v) = %q, expected %q", tt.fraction, got, tt.expected)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		phase    Phase
		fraction float64
		date     string
		expected string
	}{
		{FullMoon, 0.9999, "2025-12-25", "Lunar profile for 2025-12-25: Full Moon (100% illuminated)"},
		{WaningCrescent, 0.111, "2025-11-25", "Lunar profile for 2025-11-25: Waning Crescent (11% illuminated)"},
		{FirstQuarter, 0.5049, "2026-03-05", "Lunar profile for 2026-03-05: First Quarter (50% illuminated)"},
		{NewMoon, 0.0001, "2026-03-12", "Lunar profile for 2026-03-12: New Moon (0% illuminated)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			result := RenderSummary(tt.phase, tt.fraction, tt.date)
			if len(result) != 1 || result[0] != tt.expected {
				t.Errorf("RenderSummary = %q, expected [%q]", result, tt.expected)
			}
		})
	}
}
