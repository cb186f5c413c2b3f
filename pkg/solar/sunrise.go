package solar

import (
	"math"
	"time"
)

// standardAltitude is the apparent altitude (degrees) of the Sun's centre at
// rise and set, allowing for refraction and the solar semi-diameter.
const standardAltitude = -0.8333

const minutesPerDay = 1440

// Events holds the day's sunrise, transit and sunset as minutes from
// midnight UTC
type Events struct {
	SunriseMinutes int
	TransitMinutes int
	SunsetMinutes  int
}

// Summary is the formatted form of Events, all times HH:MM UTC
type Summary struct {
	Sunrise string `json:"sunrise"`
	Zenith  string `json:"zenith"`
	Sunset  string `json:"sunset"`
}

// CalculateDailyEvents returns sunrise, solar transit and sunset for the UTC
// date at the specified latitude and longitude. It reports false for polar
// day (sun never sets), polar night (sun never rises) and for days where the
// rise or set falls outside 00:00-23:59 UTC.
func CalculateDailyEvents(date time.Time, latitude, longitude float64) (Events, bool) {
	// Solar coordinates at noon UTC are close enough for minute resolution
	T := julianCenturies(startOfDay(date).Add(12 * time.Hour))
	declinationRad := declination(T)
	eotMinutes := equationOfTime(T)

	latRad := degToRad(latitude)

	// Hour angle of the Sun at the standard altitude
	cosH := (math.Sin(degToRad(standardAltitude)) - math.Sin(latRad)*math.Sin(declinationRad)) /
		(math.Cos(latRad) * math.Cos(declinationRad))

	if cosH < -1.0 {
		// Sun never sets (midnight sun / polar day)
		return Events{}, false
	}
	if cosH > 1.0 {
		// Sun never rises (polar night)
		return Events{}, false
	}

	// 4 minutes of time per degree of hour angle
	hourAngleMinutes := radToDeg(math.Acos(cosH)) * 4.0

	// Positive longitude (east) means an earlier UTC noon
	solarNoonUTC := 720.0 - longitude*4.0 - eotMinutes

	events := Events{
		SunriseMinutes: int(math.Round(solarNoonUTC - hourAngleMinutes)),
		TransitMinutes: int(math.Round(solarNoonUTC)),
		SunsetMinutes:  int(math.Round(solarNoonUTC + hourAngleMinutes)),
	}

	if events.SunriseMinutes < 0 || events.SunsetMinutes >= minutesPerDay {
		return Events{}, false
	}
	return events, true
}

// CalculateDailySummary returns the formatted rise, zenith and set times for
// the date, or false when there is nothing to report.
func CalculateDailySummary(date time.Time, latitude, longitude float64) (Summary, bool) {
	events, ok := CalculateDailyEvents(date, latitude, longitude)
	if !ok {
		return Summary{}, false
	}
	return Summary{
		Sunrise: FormatSunTime(events.SunriseMinutes, time.UTC),
		Zenith:  FormatSunTime(events.TransitMinutes, time.UTC),
		Sunset:  FormatSunTime(events.SunsetMinutes, time.UTC),
	}, true
}

// FormatSunTime converts UTC minutes from midnight to an HH:MM string in the
// given timezone location.
func FormatSunTime(utcMinutes int, loc *time.Location) string {
	if utcMinutes < 0 {
		return ""
	}

	hours := utcMinutes / 60
	minutes := utcMinutes % 60

	// Create a time in UTC, then convert to local
	t := time.Date(2000, 1, 1, hours, minutes, 0, 0, time.UTC)
	return t.In(loc).Format("15:04")
}
