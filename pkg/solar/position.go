// Package solar computes the Sun's elevation over a UTC day and renders the
// resulting hourly profile as summary lines, a table, or an ASCII chart.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Position holds the Sun's apparent position for one instant and location
type Position struct {
	DeclinationDeg float64
	EqOfTimeMin    float64
	HourAngleDeg   float64
	ElevationDeg   float64 // refraction-corrected, negative below the horizon
}

// degToRad converts an angle from degrees to radians for trigonometric calculations
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// radToDeg converts an angle from radians to degrees for human-readable output
func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// fixAngle normalizes an angle to the range [0, 360) degrees
func fixAngle(a float64) float64 {
	return a - 360.0*math.Floor(a/360.0)
}

// julianCenturies returns Julian centuries since J2000.0 for a UTC time
func julianCenturies(t time.Time) float64 {
	return (julian.TimeToJD(t.UTC()) - 2451545.0) / 36525.0
}

// declination returns the Sun's apparent declination in radians
func declination(T float64) float64 {
	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	Ω := 125.04 - 1934.136*T
	λ := L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(Ω))
	return math.Asin(math.Sin(degToRad(meanObliquity(T))) * math.Sin(degToRad(λ)))
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees
func meanObliquity(T float64) float64 {
	return 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
}

// equationOfTime calculates the Equation of Time (EoT) in minutes, the difference between apparent and mean solar time
func equationOfTime(T float64) float64 {
	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032)) // Mean longitude of the Sun (degrees)
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))  // Mean anomaly of the Sun (degrees)
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)       // Eccentricity of Earth's orbit
	eps0 := meanObliquity(T)

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	return radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4 // 4 minutes of time per degree
}

// refraction returns the atmospheric refraction in degrees for a true
// altitude h (degrees), using Saemundsson's formula. Below -1° the
// correction is dropped.
func refraction(h float64) float64 {
	if h < -1 {
		return 0
	}
	// Saemundsson gives arcminutes
	return 1.02 / math.Tan(degToRad(h+10.3/(h+5.11))) / 60.0
}

// CalculatePosition returns the Sun's position for the UTC instant t at the
// given latitude and longitude (decimal degrees, east positive).
func CalculatePosition(t time.Time, latitude, longitude float64) Position {
	t = t.UTC()
	T := julianCenturies(t)

	δRad := declination(T)
	eqTimeMin := equationOfTime(T)

	utcMin := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60.0
	tst := utcMin + 4*longitude + eqTimeMin // true solar time in minutes
	ha := tst/4 - 180

	latRad := degToRad(latitude)
	cosZen := math.Sin(latRad)*math.Sin(δRad) + math.Cos(latRad)*math.Cos(δRad)*math.Cos(degToRad(ha))
	// Clamp to [-1, 1] for numerical safety
	cosZen = math.Max(-1, math.Min(1, cosZen))
	trueElevation := 90 - radToDeg(math.Acos(cosZen))

	return Position{
		DeclinationDeg: radToDeg(δRad),
		EqOfTimeMin:    eqTimeMin,
		HourAngleDeg:   ha,
		ElevationDeg:   trueElevation + refraction(trueElevation),
	}
}

// Elevation returns the Sun's apparent elevation in degrees
func Elevation(t time.Time, latitude, longitude float64) float64 {
	return CalculatePosition(t, latitude, longitude).ElevationDeg
}
