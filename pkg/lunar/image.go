package lunar

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultImageChar is the character that draws the illuminated part
const DefaultImageChar = "#"

// ImageRows is the height of every phase glyph
const ImageRows = 5

// ErrUnknownPhase is returned when no glyph exists for a phase name
var ErrUnknownPhase = errors.New("unknown moon phase")

const imageIndent = "    "

// glyphs draws each phase on a 5x5 grid; '#' is lit, ' ' is dark
var glyphs = map[Phase][ImageRows]string{
	NewMoon:  {"     ", "     ", "     ", "     ", "     "},
	FullMoon: {" ### ", "#####", "#####", "#####", " ### "},

	FirstQuarter: {" ### ", "###  ", "##   ", "###  ", " ### "},
	LastQuarter:  {" ### ", "  ###", "   ##", "  ###", " ### "},

	WaxingCrescent: {"  #  ", " #   ", " #   ", " #   ", "  #  "},
	WaningCrescent: {"  #  ", "   # ", "   # ", "   # ", "  #  "},

	WaxingGibbous: {" ### ", "#####", "#### ", "#####", " ### "},
	WaningGibbous: {" ### ", "#####", " ####", "#####", " ### "},

	// Lit rim only, direction is unknown inside the half-moon band
	HalfMoon: {" ### ", "## ##", "#   #", "## ##", " ### "},
}

// RenderImage draws the phase as five indented rows using char for the lit
// part. An empty char means DefaultImageChar.
func RenderImage(phase Phase, char string) ([]string, error) {
	glyph, ok := glyphs[phase]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPhase, string(phase))
	}
	if char == "" {
		char = DefaultImageChar
	}

	lines := make([]string, 0, ImageRows)
	for _, row := range glyph {
		lines = append(lines, imageIndent+strings.ReplaceAll(row, "#", char))
	}
	return lines, nil
}

// RenderImageOrFull behaves like RenderImage but draws the Full Moon glyph
// for unknown phase names.
func RenderImageOrFull(phase Phase, char string) []string {
	lines, err := RenderImage(phase, char)
	if err != nil {
		lines, _ = RenderImage(FullMoon, char)
	}
	return lines
}
