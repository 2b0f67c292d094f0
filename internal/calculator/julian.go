package calculator

import (
	"math"
	"time"
)

// J2000 is the Julian Day of 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDay converts an instant to its Julian Day number (Gregorian calendar, UTC).
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y := t.Year()
	m := int(t.Month())
	secs := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	d := float64(t.Day()) + secs/86400

	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + d + b - 1524.5
}

// CenturiesSinceJ2000 returns Julian centuries elapsed between J2000 and jd.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Normalize maps any angle in degrees into [0,360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can hand back 360 for tiny negative inputs after the addition.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func tanDeg(d float64) float64 { return math.Tan(d * math.Pi / 180) }
