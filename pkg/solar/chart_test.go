package solar

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

func footer() string {
	return "    " + strings.Repeat("-", 48)
}

func TestRenderChartRowCountAndLabels(t *testing.T) {
	tests := []struct {
		name          string
		currentHour   int
		profile       Profile
		requestedRows int
		expectedRows  int
	}{
		{
			name:        "rows below minimum are clamped to 2",
			currentHour: 6,
			profile: Profile{
				{Hour: 6, Time: "06:00", AngleDeg: 15.0},
				{Hour: 12, Time: "12:00", AngleDeg: 45.0},
			},
			requestedRows: 1,
			expectedRows:  2,
		},
		{
			name:        "rows above maximum are clamped to 30",
			currentHour: 12,
			profile: Profile{
				{Hour: 6, Time: "06:00", AngleDeg: 5.0},
				{Hour: 12, Time: "12:00", AngleDeg: 80.0},
				{Hour: 18, Time: "18:00", AngleDeg: 20.0},
			},
			requestedRows: 100,
			expectedRows:  30,
		},
		{
			name:        "rows within range are respected",
			currentHour: 12,
			profile: Profile{
				{Hour: 6, Time: "06:00", AngleDeg: 15.0},
				{Hour: 12, Time: "12:00", AngleDeg: 45.0},
				{Hour: 18, Time: "18:00", AngleDeg: 10.0},
			},
			requestedRows: 6,
			expectedRows:  6,
		},
		{
			name:        "current hour below the horizon",
			currentHour: 2,
			profile: Profile{
				{Hour: 2, Time: "02:00", AngleDeg: -12.0},
				{Hour: 12, Time: "12:00", AngleDeg: 33.3},
			},
			requestedRows: 5,
			expectedRows:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := RenderChart(tt.profile, ChartConfig{
				Rows:        tt.requestedRows,
				DataChar:    "*",
				CurrentChar: "X",
				CurrentHour: tt.currentHour,
			})

			if len(chart) != tt.expectedRows+1 {
				t.Fatalf("len(chart) = %d, expected %d", len(chart), tt.expectedRows+1)
			}

			maxElevation := 0.0
			currentPlotted := false
			for _, s := range tt.profile {
				if s.AngleDeg > 0 {
					maxElevation = math.Max(maxElevation, s.AngleDeg)
					if s.Hour == tt.currentHour {
						currentPlotted = true
					}
				}
			}
			ceiling := int(math.Ceil(maxElevation/10.0)) * 10

			if !strings.HasPrefix(chart[0], strconv.Itoa(ceiling)+"°") {
				t.Errorf("top row %q does not carry ceiling %d°", chart[0], ceiling)
			}
			if !strings.HasPrefix(chart[len(chart)-2], "0°") {
				t.Errorf("bottom row %q does not carry 0° label", chart[len(chart)-2])
			}
			if chart[len(chart)-1] != footer() {
				t.Errorf("footer = %q, expected %q", chart[len(chart)-1], footer())
			}

			hasCurrent := false
			hasData := false
			for _, line := range chart {
				hasCurrent = hasCurrent || strings.Contains(line, "X")
				hasData = hasData || strings.Contains(line, "*")
			}
			if hasCurrent != currentPlotted {
				t.Errorf("current char present = %v, expected %v", hasCurrent, currentPlotted)
			}
			if !hasData {
				t.Error("expected data char in chart")
			}
		})
	}
}

func TestRenderChartGolden(t *testing.T) {
	profile := Profile{
		{Hour: 10, Time: "10:00", AngleDeg: 20.0},
		{Hour: 12, Time: "12:00", AngleDeg: 50.0},
		{Hour: 14, Time: "14:00", AngleDeg: 30.0},
	}

	chart := RenderChart(profile, ChartConfig{Rows: 5, DataChar: "+", CurrentChar: "@", CurrentHour: 12})

	expected := []string{
		"50° |   @  ",
		"    |      ",
		"    |     +",
		"    | +    ",
		"0°  |      ",
		footer(),
	}
	if len(chart) != len(expected) {
		t.Fatalf("len(chart) = %d, expected %d:\n%s", len(chart), len(expected), strings.Join(chart, "\n"))
	}
	for i := range expected {
		if chart[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, chart[i], expected[i])
		}
	}
}

func TestRenderChartCeilingInTopRow(t *testing.T) {
	// 50/3 does not divide evenly; the maximum must still land in row 0
	for _, rows := range []int{3, 7, 9, 11, 13, 29} {
		t.Run(strconv.Itoa(rows), func(t *testing.T) {
			profile := Profile{{Hour: 12, Time: "12:00", AngleDeg: 50.0}}
			chart := RenderChart(profile, ChartConfig{Rows: rows, DataChar: ".", CurrentChar: "@", CurrentHour: 12})

			if !strings.Contains(chart[0], "@") {
				t.Errorf("top row %q does not contain the ceiling sample", chart[0])
			}
			for i, line := range chart[1:] {
				if strings.Contains(line, "@") {
					t.Errorf("row %d also contains the ceiling sample: %q", i+1, line)
				}
			}
		})
	}
}

func TestRenderChartLowerBoundExclusive(t *testing.T) {
	profile := Profile{
		{Hour: 12, Time: "12:00", AngleDeg: 50.0},
		{Hour: 13, Time: "13:00", AngleDeg: 40.0}, // exactly on the row 0/row 1 boundary
	}

	chart := RenderChart(profile, ChartConfig{Rows: 5, DataChar: "*", CurrentChar: "X", CurrentHour: 13})

	if strings.Contains(chart[0], "X") {
		t.Errorf("boundary sample plotted in row 0: %q", chart[0])
	}
	if !strings.Contains(chart[1], "X") {
		t.Errorf("boundary sample missing from row 1: %q", chart[1])
	}
}

// rowsContaining counts chart data rows holding marker
func rowsContaining(chart []string, marker string) int {
	n := 0
	for _, line := range chart[:len(chart)-1] {
		if strings.Contains(line, marker) {
			n++
		}
	}
	return n
}

func TestRenderChartInnerBoundarySample(t *testing.T) {
	profile := Profile{
		{Hour: 10, Time: "10:00", AngleDeg: 4.0},
		{Hour: 12, Time: "12:00", AngleDeg: 9.5},
	}

	chart := RenderChart(profile, ChartConfig{Rows: 15, DataChar: "*", CurrentChar: "X", CurrentHour: 10})

	if got := rowsContaining(chart, "X"); got != 1 {
		t.Errorf("4.0° sample plotted in %d rows, expected 1:\n%s", got, strings.Join(chart, "\n"))
	}
}

func TestRenderChartEverySampleInOneRow(t *testing.T) {
	for ceiling := 10; ceiling <= 90; ceiling += 10 {
		for rows := MinChartRows; rows <= MaxChartRows; rows++ {
			for hundredths := 1; hundredths <= ceiling*100; hundredths += 25 {
				angle := float64(hundredths) / 100
				profile := Profile{
					{Hour: 6, Time: "06:00", AngleDeg: angle},
					{Hour: 12, Time: "12:00", AngleDeg: float64(ceiling)},
				}

				chart := RenderChart(profile, ChartConfig{Rows: rows, DataChar: "*", CurrentChar: "X", CurrentHour: 6})
				if got := rowsContaining(chart, "X"); got != 1 {
					t.Fatalf("ceiling %d, rows %d: %.2f° sample plotted in %d rows, expected 1", ceiling, rows, angle, got)
				}
			}
		}
	}
}

func TestRenderChartCurrentCharInSingleRow(t *testing.T) {
	profile := Profile{
		{Hour: 6, Time: "06:00", AngleDeg: 5.0},
		{Hour: 12, Time: "12:00", AngleDeg: 80.0},
		{Hour: 18, Time: "18:00", AngleDeg: 20.0},
	}

	chart := RenderChart(profile, ChartConfig{Rows: 8, DataChar: "*", CurrentChar: "X", CurrentHour: 18})

	// ceiling 80, 8 rows of 10 degrees: 20 falls in (10, 20], row 6
	for i, line := range chart {
		if got, want := strings.Contains(line, "X"), i == 6; got != want {
			t.Errorf("row %d contains current char = %v, expected %v: %q", i, got, want, line)
		}
	}
}

func TestRenderChartPreservesProfileOrder(t *testing.T) {
	// Unsorted, non-contiguous hours with a tie in the top band
	profile := Profile{
		{Hour: 18, Time: "18:00", AngleDeg: 9.0},
		{Hour: 6, Time: "06:00", AngleDeg: 9.5},
		{Hour: 12, Time: "12:00", AngleDeg: 1.0},
	}

	chart := RenderChart(profile, ChartConfig{Rows: 2, DataChar: "a", CurrentChar: "b", CurrentHour: 6})

	// ceiling 10, rows (5,10] and (0,5]
	expected := []string{
		"10° | a b  ",
		"0°  |     a",
		footer(),
	}
	for i := range expected {
		if chart[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, chart[i], expected[i])
		}
	}
}

func TestRenderChartLabelAlignment(t *testing.T) {
	profile := Profile{
		{Hour: 9, Time: "09:00", AngleDeg: 12.0},
		{Hour: 12, Time: "12:00", AngleDeg: 61.2},
	}
	chart := RenderChart(profile, ChartConfig{Rows: 10, DataChar: ".", CurrentChar: "O"})

	column := -1
	for i, line := range chart[:len(chart)-1] {
		bar := strings.Index(line, "|")
		if bar < 0 {
			t.Fatalf("row %d has no separator: %q", i, line)
		}
		width := utf8.RuneCountInString(line[:bar])
		if column == -1 {
			column = width
		}
		if width != column {
			t.Errorf("row %d separator at column %d, expected %d", i, width, column)
		}
	}
}

func TestRenderChartBelowHorizon(t *testing.T) {
	allNegative := make(Profile, 0, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		allNegative = append(allNegative, HourlySample{Hour: h, Time: strconv.Itoa(h) + ":00", AngleDeg: -1.0})
	}

	tests := []struct {
		name    string
		profile Profile
	}{
		{name: "all negative", profile: allNegative},
		{name: "empty", profile: nil},
		{name: "horizon only", profile: Profile{{Hour: 7, Time: "07:00", AngleDeg: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderChart(tt.profile, ChartConfig{Rows: 6, DataChar: "*", CurrentChar: "X"})
			if len(result) != 1 {
				t.Fatalf("len(result) = %d, expected 1: %v", len(result), result)
			}
			if !strings.Contains(result[0], "sun is below the horizon") {
				t.Errorf("result = %q, expected below-horizon message", result[0])
			}
		})
	}
}

func TestClampRows(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{-4, 2}, {0, 2}, {1, 2}, {2, 2}, {5, 5}, {30, 30}, {31, 30}, {100, 30},
	}
	for _, tt := range tests {
		if got := ClampRows(tt.rows); got != tt.expected {
			t.Errorf("ClampRows(%d) = %d, expected %d", tt.rows, got, tt.expected)
		}
	}
}

func TestCeiling(t *testing.T) {
	tests := []struct {
		max      float64
		expected int
	}{
		{0.3, 10}, {10.0, 10}, {10.01, 20}, {45.0, 50}, {89.9, 90},
	}
	for _, tt := range tests {
		profile := Profile{{Hour: 0, AngleDeg: -20}, {Hour: 12, AngleDeg: tt.max}, {Hour: 13, AngleDeg: tt.max / 2}}
		got, ok := Ceiling(profile)
		if !ok {
			t.Fatalf("Ceiling(%v) reported no positive sample", tt.max)
		}
		if got != tt.expected {
			t.Errorf("Ceiling(max=%v) = %d, expected %d", tt.max, got, tt.expected)
		}
	}

	if _, ok := Ceiling(Profile{{Hour: 0, AngleDeg: -3}}); ok {
		t.Error("Ceiling reported a value for an all-negative profile")
	}
}

func BenchmarkRenderChart(b *testing.B) {
	profile := CalculateDailyProfile(londonDate, 51.5074, -0.1278)
	cfg := ChartConfig{Rows: 10, DataChar: ".", CurrentChar: "O", CurrentHour: 12}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RenderChart(profile, cfg)
	}
}
