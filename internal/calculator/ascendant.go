package calculator

import (
	"math"

	"Jyotish/internal/model"
)

// GreenwichSiderealTime returns mean sidereal time at Greenwich in degrees.
func GreenwichSiderealTime(jd float64) float64 {
	t := CenturiesSinceJ2000(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*t*t - t*t*t/38710000
	return Normalize(gmst)
}

// LocalSiderealTime returns local sidereal time in degrees for an east-positive longitude.
func LocalSiderealTime(jd, longitude float64) float64 {
	return Normalize(GreenwichSiderealTime(jd) + longitude)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(jd float64) float64 {
	return 23.4392911 - 0.0130042*CenturiesSinceJ2000(jd)
}

// TropicalAscendant returns the tropical ecliptic longitude rising on the eastern horizon.
func TropicalAscendant(jd, latitude, longitude float64) float64 {
	ramc := LocalSiderealTime(jd, longitude)
	eps := Obliquity(jd)
	y := cosDeg(ramc)
	x := -(sinDeg(ramc)*cosDeg(eps) + tanDeg(latitude)*sinDeg(eps))
	return Normalize(math.Atan2(y, x) * 180 / math.Pi)
}

// CalculateAscendant returns the sidereal ascendant for a birth.
func CalculateAscendant(in model.BirthInput) model.AscendantPosition {
	jd := JulianDay(in.UTC())
	lon := Sidereal(TropicalAscendant(jd, in.Latitude, in.Longitude), AyanamsaAt(jd))
	return NewAscendant(lon)
}

// NewAscendant derives the sign and nakshatra fields for an ascendant longitude.
func NewAscendant(lon float64) model.AscendantPosition {
	lon = Normalize(lon)
	nak, pada, _ := NakshatraOf(lon)
	return model.AscendantPosition{
		Longitude: lon,
		Sign:      SignOf(lon),
		Nakshatra: nak,
		Pada:      pada,
	}
}
