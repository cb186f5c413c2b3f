package solar

import (
	"fmt"
	"math"
	"time"
)

// HoursPerDay is the number of hourly samples in a full daily profile
const HoursPerDay = 24

// HourlySample is the Sun's elevation at the top of one UTC hour
type HourlySample struct {
	Hour     int     `json:"hour"`
	Time     string  `json:"time"`      // HH:MM
	AngleDeg float64 `json:"angle_deg"` // negative below the horizon
}

// Profile is a day's hourly samples. Hours are not guaranteed to be
// contiguous or sorted.
type Profile []HourlySample

// AboveHorizon returns the samples with a strictly positive elevation,
// preserving their order.
func (p Profile) AboveHorizon() Profile {
	var above Profile
	for _, s := range p {
		if s.AngleDeg > 0 {
			above = append(above, s)
		}
	}
	return above
}

// Angles returns the elevation of every sample in order
func (p Profile) Angles() []float64 {
	angles := make([]float64, len(p))
	for i, s := range p {
		angles[i] = s.AngleDeg
	}
	return angles
}

// CalculateDailyProfile samples the Sun's elevation at every hour from 00:00
// to 23:00 UTC on the given date. Angles are rounded to two decimals. Hours
// whose elevation cannot be computed are left out of the profile.
func CalculateDailyProfile(date time.Time, latitude, longitude float64) Profile {
	midnight := startOfDay(date)

	profile := make(Profile, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		angle := Elevation(midnight.Add(time.Duration(hour)*time.Hour), latitude, longitude)
		if math.IsNaN(angle) || math.IsInf(angle, 0) {
			continue
		}
		profile = append(profile, HourlySample{
			Hour:     hour,
			Time:     fmt.Sprintf("%02d:00", hour),
			AngleDeg: math.Round(angle*100) / 100,
		})
	}
	return profile
}

// startOfDay returns 00:00 UTC on the calendar date of t in UTC
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
