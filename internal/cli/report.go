package cli

import (
	"time"

	"github.com/chrissnell/uplook/internal/ephemeris"
	"github.com/chrissnell/uplook/pkg/lunar"
	"github.com/chrissnell/uplook/pkg/solar"
)

// solarReport is the structured form of the solar command output
type solarReport struct {
	Date     string             `json:"date"`
	Type     string             `json:"type"`
	Location ephemeris.Location `json:"location"`
	Summary  *solar.Summary     `json:"summary"` // null when the sun does not rise and set
	Profile  solar.Profile      `json:"profile,omitempty"`
	Lines    []string           `json:"lines"`
}

// lunarReport is the structured form of the lunar command output
type lunarReport struct {
	Date            string      `json:"date"`
	Type            string      `json:"type"`
	Phase           lunar.Phase `json:"phase"`
	Fraction        float64     `json:"fraction"`
	Illuminated     string      `json:"illuminated"`
	AgeDays         float64     `json:"age_days"`
	Elongation      float64     `json:"elongation"`
	Waxing          bool        `json:"waxing"`
	PreviousNewMoon time.Time   `json:"previous_new_moon"`
	Lines           []string    `json:"lines"`
}
