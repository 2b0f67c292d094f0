package model

import (
	"fmt"
	"strings"
)

// Planet identifies one of the nine grahas.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// AllPlanets lists the nine grahas in chart order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

var planetNames = [...]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

func (p Planet) String() string {
	if p < Sun || p > Ketu {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// MarshalText renders the planet by name so JSON output stays readable.
func (p Planet) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts any case of the planet's English name.
func (p *Planet) UnmarshalText(b []byte) error {
	v, ok := ParsePlanet(string(b))
	if !ok {
		return fmt.Errorf("unknown planet %q", string(b))
	}
	*p = v
	return nil
}

// ParsePlanet resolves a planet from its English name, ignoring case and surrounding space.
func ParsePlanet(name string) (Planet, bool) {
	name = strings.TrimSpace(name)
	for i, n := range planetNames {
		if strings.EqualFold(n, name) {
			return Planet(i), true
		}
	}
	return 0, false
}

// IsNode reports whether the planet is one of the lunar nodes.
func (p Planet) IsNode() bool { return p == Rahu || p == Ketu }

// Sign is a zodiac sign index, Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Sign) UnmarshalText(b []byte) error {
	v, ok := ParseSign(string(b))
	if !ok {
		return fmt.Errorf("unknown sign %q", string(b))
	}
	*s = v
	return nil
}

// ParseSign resolves a sign from its English name.
func ParseSign(name string) (Sign, bool) {
	name = strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, name) {
			return Sign(i), true
		}
	}
	return 0, false
}

// Add returns the sign n steps forward, wrapping around the zodiac.
func (s Sign) Add(n int) Sign {
	return Sign(((int(s)+n)%12 + 12) % 12)
}

// Modality classifies a sign as movable, fixed or dual.
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

func (m Modality) String() string {
	switch m {
	case Movable:
		return "Movable"
	case Fixed:
		return "Fixed"
	case Dual:
		return "Dual"
	default:
		return "Unknown"
	}
}

// Modality returns the sign's movable/fixed/dual class (sign index mod 3).
func (s Sign) Modality() Modality { return Modality(int(s) % 3) }

// Nakshatra is a lunar mansion index, Ashwini = 0 through Revati = 26.
type Nakshatra int

// NakshatraCount is the number of lunar mansions on the ecliptic.
const NakshatraCount = 27

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu",
	"Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta",
	"Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if n < 0 || int(n) >= NakshatraCount {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

func (n Nakshatra) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *Nakshatra) UnmarshalText(b []byte) error {
	name := strings.TrimSpace(string(b))
	for i, v := range nakshatraNames {
		if strings.EqualFold(v, name) {
			*n = Nakshatra(i)
			return nil
		}
	}
	return fmt.Errorf("unknown nakshatra %q", string(b))
}

// NakshatraNames returns the canonical mansion names in order.
func NakshatraNames() []string {
	out := make([]string, NakshatraCount)
	copy(out, nakshatraNames[:])
	return out
}
