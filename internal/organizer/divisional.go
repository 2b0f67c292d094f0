package organizer

import (
	"math"

	"Jyotish/internal/calculator"
	"Jyotish/internal/model"
)

// Varga is a harmonic chart that cuts each sign into equal parts and maps every part
// to a new sign. The first part's sign is offset from the source sign by one of three
// formulas picked by the source sign's modality (sign index mod 3).
type Varga struct {
	Name      string
	Divisions int
	Offsets   [3]int // movable, fixed, dual
}

var (
	// Navamsa (D9): 3°20′ parts; movable signs start from themselves, fixed from
	// their 9th, dual from their 5th.
	Navamsa = Varga{Name: "D9", Divisions: 9, Offsets: [3]int{0, 8, 4}}

	// Dasamsa (D10): 3° parts; movable signs start from themselves, fixed from their
	// 5th, dual from their 9th.
	Dasamsa = Varga{Name: "D10", Divisions: 10, Offsets: [3]int{0, 4, 8}}
)

// Part returns the zero-based division of the sign that the longitude falls in and
// the fraction already covered within that division.
func (v Varga) Part(lon float64) (int, float64) {
	lon = calculator.Normalize(lon)
	span := 30.0 / float64(v.Divisions)
	deg := lon - float64(calculator.SignOf(lon))*30
	raw := deg / span
	part := int(math.Floor(raw))
	if part >= v.Divisions {
		part = v.Divisions - 1
	}
	return part, raw - float64(part)
}

// SignOf returns the divisional sign for a sidereal longitude.
func (v Varga) SignOf(lon float64) model.Sign {
	sign := calculator.SignOf(lon)
	part, _ := v.Part(lon)
	return sign.Add(v.Offsets[sign.Modality()] + part)
}

// Longitude maps a sidereal longitude into the divisional zodiac, keeping the position
// within the part as the position within the new sign.
func (v Varga) Longitude(lon float64) float64 {
	_, frac := v.Part(lon)
	return float64(v.SignOf(lon))*30 + frac*30
}

// Ascendant returns the divisional ascendant.
func (v Varga) Ascendant(asc model.AscendantPosition) model.AscendantPosition {
	return calculator.NewAscendant(v.Longitude(asc.Longitude))
}

// Chart remaps every planet into the varga and re-derives houses from the divisional
// ascendant the same way the birth chart does.
func (v Varga) Chart(asc model.AscendantPosition, planets []model.PlanetPosition) []model.HouseSlot {
	vAsc := v.Ascendant(asc)
	mapped := make([]model.PlanetPosition, len(planets))
	for i, p := range planets {
		mapped[i] = calculator.NewPosition(p.Planet, v.Longitude(p.Longitude), p.Retrograde)
	}
	return Houses(vAsc.Sign, mapped)
}
