package calculator

import (
	"math"

	"Jyotish/internal/model"
)

// meanElements describes a planet's tropical geocentric longitude as a linear term in
// centuries since J2000 plus one sinusoid: L = L0 + Rate·T + Amp·sin(Phase0 + PhaseRate·T).
// For Sun and Moon the sinusoid is the equation of centre; for the five classical planets
// it is the synodic term, whose phase reaches 180° at the middle of a retrograde loop.
type meanElements struct {
	L0        float64
	Rate      float64
	Amp       float64
	Phase0    float64
	PhaseRate float64
}

var elements = map[model.Planet]meanElements{
	model.Sun:     {L0: 280.46646, Rate: 36000.76983, Amp: 1.914602, Phase0: 357.52911, PhaseRate: 35999.05029},
	model.Moon:    {L0: 218.3165, Rate: 481267.8813, Amp: 6.2886, Phase0: 134.9634, PhaseRate: 477198.8676},
	model.Mercury: {L0: 280.46646, Rate: 36000.76983, Amp: 22.5, Phase0: 331.8, PhaseRate: 113473.0},
	model.Venus:   {L0: 280.46646, Rate: 36000.76983, Amp: 46.0, Phase0: 259.5, PhaseRate: 22518.4},
	model.Mars:    {L0: 355.43300, Rate: 19140.29934, Amp: 35.0, Phase0: 296.06, PhaseRate: 16859.07},
	model.Jupiter: {L0: 34.35148, Rate: 3034.90567, Amp: 11.0, Phase0: 240.81, PhaseRate: 32964.46},
	model.Saturn:  {L0: 50.07744, Rate: 1222.11381, Amp: 6.0, Phase0: 232.93, PhaseRate: 34777.26},
	model.Rahu:    {L0: 125.04452, Rate: -1934.136261},
}

// retrogradeWindow is the share of each synodic cycle, centred on phase 180°, that is
// flagged retrograde. This is a placeholder signal, not a velocity check.
var retrogradeWindow = map[model.Planet]float64{
	model.Mercury: 0.19,
	model.Venus:   0.072,
	model.Mars:    0.093,
	model.Jupiter: 0.30,
	model.Saturn:  0.36,
}

// TropicalLongitude returns the planet's approximate tropical longitude at jd.
func TropicalLongitude(p model.Planet, jd float64) float64 {
	if p == model.Ketu {
		return Normalize(TropicalLongitude(model.Rahu, jd) + 180)
	}
	e := elements[p]
	t := CenturiesSinceJ2000(jd)
	lon := e.L0 + e.Rate*t
	if e.Amp != 0 {
		lon += e.Amp * sinDeg(e.Phase0+e.PhaseRate*t)
	}
	return Normalize(lon)
}

// IsRetrograde applies the periodic retrograde heuristic. Luminaries and nodes are
// never flagged.
func IsRetrograde(p model.Planet, jd float64) bool {
	window, ok := retrogradeWindow[p]
	if !ok {
		return false
	}
	e := elements[p]
	phase := Normalize(e.Phase0+e.PhaseRate*CenturiesSinceJ2000(jd)) / 360
	return math.Abs(phase-0.5) < window/2
}

// NewPosition derives sign and nakshatra fields for a sidereal longitude. House is left
// unset; the organizer assigns it.
func NewPosition(p model.Planet, lon float64, retro bool) model.PlanetPosition {
	lon = Normalize(lon)
	nak, pada, _ := NakshatraOf(lon)
	return model.PlanetPosition{
		Planet:     p,
		Longitude:  lon,
		Sign:       SignOf(lon),
		Nakshatra:  nak,
		Pada:       pada,
		Retrograde: retro,
	}
}

// CalculatePositions returns the sidereal ascendant and the nine planets for a birth.
// The result depends only on the input.
func CalculatePositions(in model.BirthInput) (model.AscendantPosition, []model.PlanetPosition) {
	jd := JulianDay(in.UTC())
	ayan := AyanamsaAt(jd)

	asc := NewAscendant(Sidereal(TropicalAscendant(jd, in.Latitude, in.Longitude), ayan))

	planets := make([]model.PlanetPosition, 0, len(model.AllPlanets))
	for _, p := range model.AllPlanets {
		lon := Sidereal(TropicalLongitude(p, jd), ayan)
		planets = append(planets, NewPosition(p, lon, IsRetrograde(p, jd)))
	}
	return asc, planets
}
