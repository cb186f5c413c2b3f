// Package lunar provides moon phase calculations using ecliptic longitudes
// of the Sun and Moon, classifies the result into named phases, and renders
// phase summaries and glyphs. Accuracy is typically within ~0.5-1%
// illumination.
package lunar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
)

// SynodicMonth is the average length of the lunar cycle in days
const SynodicMonth = 29.530588853

const daysPerJulianYear = 365.25

// IlluminationState is the input to phase classification
type IlluminationState struct {
	Fraction float64 `json:"fraction"` // illuminated fraction [0,1]
	AgeDays  float64 `json:"age_days"` // days since the previous new moon
}

// MoonPhase contains calculated moon phase information
type MoonPhase struct {
	Elongation      float64   // Sun→Moon angle in degrees [0,360)
	Illumination    float64   // Illuminated fraction [0,1]: 0=new, 1=full
	AgeDays         float64   // Days since the previous new moon
	PreviousNewMoon time.Time // UTC instant of the previous new moon
	IsWaxing        bool      // True when elongation is below 180°
	Phase           Phase
}

// State returns the illumination fraction and age pair
func (m MoonPhase) State() IlluminationState {
	return IlluminationState{Fraction: m.Illumination, AgeDays: m.AgeDays}
}

// Calculate computes the moon phase for a given UTC timestamp with the
// default classifier
func Calculate(t time.Time) MoonPhase {
	return DefaultClassifier().Calculate(t)
}

// Calculate computes the moon phase for a given UTC timestamp
func (c Classifier) Calculate(t time.Time) MoonPhase {
	t = t.UTC()
	jd := julian.TimeToJD(t)
	T := julianCenturies(jd)

	elongation := normalizeAngle(moonEclipticLongitude(T) - sunEclipticLongitude(T))
	illumination := (1 - math.Cos(degToRad(elongation))) / 2

	newMoonJD := previousNewMoonJD(t, jd)
	ageDays := jd - newMoonJD

	return MoonPhase{
		Elongation:      elongation,
		Illumination:    illumination,
		AgeDays:         ageDays,
		PreviousNewMoon: julian.JDToTime(newMoonJD).UTC(),
		IsWaxing:        elongation < 180,
		Phase:           c.Classify(illumination, ageDays),
	}
}

// previousNewMoonJD returns the Julian Day of the last new moon at or
// before jd. The dynamical/universal time difference (about a minute) is
// ignored.
func previousNewMoonJD(t time.Time, jd float64) float64 {
	lunation := SynodicMonth / daysPerJulianYear
	year := decimalYear(t)

	// moonphase.New returns the new moon nearest to year
	nm := moonphase.New(year)
	for nm > jd {
		year -= lunation
		nm = moonphase.New(year)
	}
	if next := moonphase.New(year + lunation); next <= jd && next > nm {
		nm = next
	}
	return nm
}

// decimalYear expresses t as a year and fractional year
func decimalYear(t time.Time) float64 {
	startOfYear := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	startOfNext := startOfYear.AddDate(1, 0, 0)
	return float64(t.Year()) + t.Sub(startOfYear).Hours()/startOfNext.Sub(startOfYear).Hours()
}

// julianCenturies returns Julian centuries since J2000.0
func julianCenturies(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// normalizeAngle wraps an angle to the range [0, 360)
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// degToRad converts degrees to radians
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// sunEclipticLongitude computes the Sun's ecliptic longitude in degrees
func sunEclipticLongitude(T float64) float64 {
	// Mean longitude
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T

	// Mean anomaly
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(normalizeAngle(M))

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	return normalizeAngle(L0 + C)
}

// moonEclipticLongitude computes the Moon's ecliptic longitude in degrees
func moonEclipticLongitude(T float64) float64 {
	// Mean longitude
	L := 218.3164477 +
		481267.88123421*T -
		0.0015786*T*T +
		T*T*T/538841 -
		T*T*T*T/65194000

	// Moon mean elongation
	D := 297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868 -
		T*T*T*T/113065000

	// Sun mean anomaly
	M := 357.5291092 +
		35999.0502909*T -
		0.0001536*T*T +
		T*T*T/24490000

	// Moon mean anomaly
	Mp := 134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699 -
		T*T*T*T/14712000

	// Argument of latitude
	F := 93.2720950 +
		483202.0175233*T -
		0.0036539*T*T -
		T*T*T/3526000 +
		T*T*T*T/863310000

	// Normalize before using in trig functions
	Drad := degToRad(normalizeAngle(D))
	Mrad := degToRad(normalizeAngle(M))
	Mprad := degToRad(normalizeAngle(Mp))
	Frad := degToRad(normalizeAngle(F))

	// Longitude correction (dominant terms of Meeus Table 47.A)
	lambdaMoon := L +
		6.289*math.Sin(Mprad) +
		1.274*math.Sin(2*Drad-Mprad) +
		0.658*math.Sin(2*Drad) +
		0.214*math.Sin(2*Mprad) -
		0.186*math.Sin(Mrad) -
		0.114*math.Sin(2*Frad) +
		0.059*math.Sin(2*Drad-2*Mprad) +
		0.057*math.Sin(2*Drad-Mrad-Mprad) +
		0.053*math.Sin(2*Drad+Mprad) +
		0.046*math.Sin(2*Drad-Mrad) -
		0.041*math.Sin(Mrad-Mprad) -
		0.035*math.Sin(Drad) -
		0.030*math.Sin(Mrad+Mprad)

	return normalizeAngle(lambdaMoon)
}
