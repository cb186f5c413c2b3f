package lunar

// Phase is a named lunar phase
type Phase string

const (
	NewMoon        Phase = "New Moon"
	WaxingCrescent Phase = "Waxing Crescent"
	FirstQuarter   Phase = "First Quarter"
	WaxingGibbous  Phase = "Waxing Gibbous"
	FullMoon       Phase = "Full Moon"
	WaningGibbous  Phase = "Waning Gibbous"
	LastQuarter    Phase = "Last Quarter"
	WaningCrescent Phase = "Waning Crescent"

	// HalfMoon is only produced by a Classifier with HalfMoonBand set
	HalfMoon Phase = "Half Moon"
)

// DefaultFullMoonAge is the age in days at which the moon is taken to be
// full, half of a synodic month. Younger moons wax, older moons wane.
const DefaultFullMoonAge = 14.77

// Illumination thresholds separating the phase bands
const (
	newMoonMax      = 0.01
	fullMoonMin     = 0.99
	crescentMax     = 0.49
	gibbousMin      = 0.51
	halfMoonBandLow = 0.499
	halfMoonBandTop = 0.501
)

// Phases returns the eight standard phases in cycle order starting at New Moon
func Phases() []Phase {
	return []Phase{
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
		FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
	}
}

func (p Phase) String() string {
	return string(p)
}

// Valid reports whether p is one of the known phases, including HalfMoon
func (p Phase) Valid() bool {
	_, ok := glyphs[p]
	return ok
}

// Classifier maps an illumination fraction and lunar age to a Phase.
// The zero value classifies with DefaultFullMoonAge.
type Classifier struct {
	// FullMoonAge splits waxing from waning. Values <= 0 mean DefaultFullMoonAge.
	FullMoonAge float64
	// HalfMoonBand reports fractions strictly inside (0.499, 0.501) as
	// HalfMoon instead of a quarter.
	HalfMoonBand bool
}

// DefaultClassifier returns the standard eight-phase classifier
func DefaultClassifier() Classifier {
	return Classifier{FullMoonAge: DefaultFullMoonAge}
}

// Classify returns the phase for an illuminated fraction in [0,1] and an age
// in days since the previous new moon. Inputs are not validated; the result
// for values outside those ranges is unspecified.
func (c Classifier) Classify(fraction, ageDays float64) Phase {
	fullMoonAge := c.FullMoonAge
	if fullMoonAge <= 0 {
		fullMoonAge = DefaultFullMoonAge
	}
	waxing := ageDays < fullMoonAge

	switch {
	case fraction < newMoonMax:
		return NewMoon
	case fraction > fullMoonMin:
		return FullMoon
	case fraction < crescentMax:
		if waxing {
			return WaxingCrescent
		}
		return WaningCrescent
	case fraction > gibbousMin:
		if waxing {
			return WaxingGibbous
		}
		return WaningGibbous
	case c.HalfMoonBand && fraction > halfMoonBandLow && fraction < halfMoonBandTop:
		return HalfMoon
	case waxing:
		return FirstQuarter
	default:
		return LastQuarter
	}
}

// ClassifyState classifies an IlluminationState
func (c Classifier) ClassifyState(s IlluminationState) Phase {
	return c.Classify(s.Fraction, s.AgeDays)
}

// Classify uses the default classifier
func Classify(fraction, ageDays float64) Phase {
	return DefaultClassifier().Classify(fraction, ageDays)
}
