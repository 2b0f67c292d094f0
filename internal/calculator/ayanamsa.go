package calculator

import "time"

// Lahiri-style linear ayanamsa anchored at J2000.
const (
	ayanamsaAtJ2000    = 23.85306 // degrees
	ayanamsaPerCentury = 1.396971 // degrees, about 50.29" per year
)

// Ayanamsa returns the precession correction in degrees for the given instant.
func Ayanamsa(t time.Time) float64 {
	return AyanamsaAt(JulianDay(t))
}

// AyanamsaAt is Ayanamsa keyed by Julian Day.
func AyanamsaAt(jd float64) float64 {
	return ayanamsaAtJ2000 + ayanamsaPerCentury*CenturiesSinceJ2000(jd)
}

// Sidereal converts a tropical longitude to sidereal using the given ayanamsa.
func Sidereal(tropical, ayanamsa float64) float64 {
	return Normalize(tropical - ayanamsa)
}
