package solar

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/floats"
)

// Chart height limits. Requests outside the range are clamped.
const (
	MinChartRows     = 2
	MaxChartRows     = 30
	DefaultChartRows = 5
)

// Default plotting characters
const (
	DefaultDataChar    = "."
	DefaultCurrentChar = "O"
)

// BelowHorizonMessage is returned in place of a chart when no sample is
// above the horizon
const BelowHorizonMessage = "Note: The sun is below the horizon for the entire day at this location/date."

const footerWidth = 48

// ChartConfig controls how a profile is drawn
type ChartConfig struct {
	Rows        int    // clamped into [MinChartRows, MaxChartRows]
	DataChar    string // marks a plotted hour
	CurrentChar string // marks the plotted hour equal to CurrentHour
	CurrentHour int    // UTC hour 0-23
}

// DefaultChartConfig returns the chart settings used when nothing else is
// configured. CurrentHour is left at zero for the caller to fill in.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Rows:        DefaultChartRows,
		DataChar:    DefaultDataChar,
		CurrentChar: DefaultCurrentChar,
	}
}

// ClampRows limits a requested row count to the drawable range
func ClampRows(rows int) int {
	if rows < MinChartRows {
		return MinChartRows
	}
	if rows > MaxChartRows {
		return MaxChartRows
	}
	return rows
}

// Ceiling returns the chart's top value: the highest positive elevation
// rounded up to the next multiple of 10 degrees. It reports false when no
// sample is above the horizon.
func Ceiling(profile Profile) (int, bool) {
	above := profile.AboveHorizon()
	if len(above) == 0 {
		return 0, false
	}
	maxElevation := floats.Max(above.Angles())
	return int(math.Ceil(maxElevation/10.0)) * 10, true
}

// RenderChart draws the profile as an ASCII chart, top row first. Each row
// covers the elevation band (low, high]; each profile entry gets one column
// in the order given. The result is always ClampRows(cfg.Rows) data lines
// followed by a separator line, or a single BelowHorizonMessage line when
// the sun never rises.
func RenderChart(profile Profile, cfg ChartConfig) []string {
	ceiling, ok := Ceiling(profile)
	if !ok {
		return []string{BelowHorizonMessage}
	}

	rows := ClampRows(cfg.Rows)
	heightInterval := float64(ceiling) / float64(rows)

	topLabel := strconv.Itoa(ceiling) + "°"
	labelWidth := runewidth.StringWidth(topLabel)
	bottomLabel := runewidth.FillRight("0°", labelWidth)
	blankLabel := strings.Repeat(" ", labelWidth)

	lines := make([]string, 0, rows+1)
	cells := make([]string, len(profile))

	for rowIndex := 0; rowIndex < rows; rowIndex++ {
		angleLow := float64(rows-1-rowIndex) * heightInterval
		// Adjacent rows share one boundary value so no sample falls between them
		angleHigh := float64(rows-rowIndex) * heightInterval
		// Pin the outer bounds so the maximum sample is never lost to rounding
		if rowIndex == 0 {
			angleHigh = float64(ceiling)
		}
		if rowIndex == rows-1 {
			angleLow = 0
		}

		for i, sample := range profile {
			switch {
			case sample.AngleDeg <= angleLow || sample.AngleDeg > angleHigh:
				cells[i] = " "
			case sample.Hour == cfg.CurrentHour:
				cells[i] = cfg.CurrentChar
			default:
				cells[i] = cfg.DataChar
			}
		}

		var label string
		switch rowIndex {
		case 0:
			label = topLabel
		case rows - 1:
			label = bottomLabel
		default:
			label = blankLabel
		}

		lines = append(lines, label+" | "+strings.Join(cells, " "))
	}

	return append(lines, strings.Repeat(" ", 4)+strings.Repeat("-", footerWidth))
}
