// Package ephemeris supplies the solar and lunar inputs the renderers
// consume. Failures never cross this boundary as errors: they become an
// empty profile or a false ok result.
package ephemeris

import (
	"math"
	"time"

	"github.com/chrissnell/uplook/pkg/lunar"
	"github.com/chrissnell/uplook/pkg/solar"
	"go.uber.org/zap"
)

// Location is an observer position in decimal degrees, east longitude positive
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are finite and in range
func (l Location) Valid() bool {
	return !math.IsNaN(l.Latitude) && !math.IsNaN(l.Longitude) &&
		l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// Provider is the source of astronomical data for a UTC date
type Provider interface {
	DailyProfile(date time.Time, loc Location) solar.Profile
	DailySummary(date time.Time, loc Location) (solar.Summary, bool)
	Moon(date time.Time) (lunar.MoonPhase, bool)
}

// Calculator is the built-in Provider backed by pkg/solar and pkg/lunar
type Calculator struct {
	classifier lunar.Classifier
	logger     *zap.SugaredLogger
}

// NewCalculator creates a Calculator that names moon phases with classifier
func NewCalculator(classifier lunar.Classifier, logger *zap.SugaredLogger) *Calculator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Calculator{
		classifier: classifier,
		logger:     logger,
	}
}

// DailyProfile returns the hourly solar elevations for the date, or an empty
// profile when the location is unusable
func (c *Calculator) DailyProfile(date time.Time, loc Location) solar.Profile {
	if !loc.Valid() {
		c.logger.Warnw("invalid location, returning empty solar profile",
			"latitude", loc.Latitude, "longitude", loc.Longitude)
		return solar.Profile{}
	}

	profile := solar.CalculateDailyProfile(date, loc.Latitude, loc.Longitude)
	c.logger.Debugw("computed solar profile",
		"date", date.Format(time.DateOnly),
		"samples", len(profile),
		"above_horizon", len(profile.AboveHorizon()))
	return profile
}

// DailySummary returns sunrise, zenith and sunset for the date
func (c *Calculator) DailySummary(date time.Time, loc Location) (solar.Summary, bool) {
	if !loc.Valid() {
		c.logger.Warnw("invalid location, no solar summary",
			"latitude", loc.Latitude, "longitude", loc.Longitude)
		return solar.Summary{}, false
	}

	summary, ok := solar.CalculateDailySummary(date, loc.Latitude, loc.Longitude)
	if !ok {
		c.logger.Debugw("no sunrise or sunset within the UTC day", "date", date.Format(time.DateOnly))
	}
	return summary, ok
}

// Moon returns the moon phase at 00:00 UTC on the date
func (c *Calculator) Moon(date time.Time) (lunar.MoonPhase, bool) {
	y, m, d := date.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	phase := c.classifier.Calculate(midnight)
	if math.IsNaN(phase.Illumination) || math.IsNaN(phase.AgeDays) {
		c.logger.Warnw("lunar calculation failed", "date", midnight.Format(time.DateOnly))
		return lunar.MoonPhase{}, false
	}

	c.logger.Debugw("computed moon phase",
		"date", midnight.Format(time.DateOnly),
		"phase", phase.Phase,
		"illumination", phase.Illumination,
		"age_days", phase.AgeDays)
	return phase, true
}
