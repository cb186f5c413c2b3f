package solar

import "testing"

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name      string
		summary   Summary
		ok        bool
		latitude  float64
		longitude float64
		date      string
		expected  []string
	}{
		{
			name:     "no events",
			ok:       false,
			date:     "2025-11-20",
			expected: []string{"Solar profile for 2025-11-20 at latitude 0.0, longitude 0.0", "No sunrise or sunset to report today!"},
		},
		{
			name:      "London",
			summary:   Summary{Sunrise: "06:45", Zenith: "12:00", Sunset: "17:30"},
			ok:        true,
			latitude:  51.5074,
			longitude: -0.1278,
			date:      "2025-11-20",
			expected: []string{
				"Solar profile for 2025-11-20 at latitude 51.5074, longitude -0.1278",
				"Sunrise: 06:45, Zenith: 12:00, Sunset: 17:30",
			},
		},
		{
			name:      "whole degrees",
			summary:   Summary{Sunrise: "05:00", Zenith: "11:00", Sunset: "17:00"},
			ok:        true,
			latitude:  -33,
			longitude: 18,
			date:      "2026-01-02",
			expected: []string{
				"Solar profile for 2026-01-02 at latitude -33.0, longitude 18.0",
				"Sunrise: 05:00, Zenith: 11:00, Sunset: 17:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := RenderSummary(tt.summary, tt.ok, tt.latitude, tt.longitude, tt.date)
			if len(lines) != len(tt.expected) {
				t.Fatalf("len(lines) = %d, expected %d: %q", len(lines), len(tt.expected), lines)
			}
			for i := range tt.expected {
				if lines[i] != tt.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, lines[i], tt.expected[i])
				}
			}
		})
	}
}
