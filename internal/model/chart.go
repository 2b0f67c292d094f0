package model

// PlanetPosition is a graha's sidereal placement in one chart computation.
type PlanetPosition struct {
	Planet     Planet    `json:"planet"`
	Longitude  float64   `json:"longitude"` // sidereal, [0,360)
	Sign       Sign      `json:"sign"`
	Nakshatra  Nakshatra `json:"nakshatra"`
	Pada       int       `json:"pada"` // 1..4
	Retrograde bool      `json:"retrograde"`
	House      int       `json:"house"` // 1..12
}

// DegreeInSign returns the position's offset within its sign, [0,30).
func (p PlanetPosition) DegreeInSign() float64 {
	return p.Longitude - float64(p.Sign)*30
}

// AscendantPosition is the rising point. Its house is always 1.
type AscendantPosition struct {
	Longitude float64   `json:"longitude"`
	Sign      Sign      `json:"sign"`
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
}

// HouseSlot is one bhava with the sign it falls in and the planets placed there.
type HouseSlot struct {
	Number  int              `json:"number"`
	Sign    Sign             `json:"sign"`
	Planets []PlanetPosition `json:"planets"`
}

// Chart is the assembled birth chart. The engine builds a fresh Chart per request and
// never touches it again; callers own it.
type Chart struct {
	Input     BirthInput        `json:"input"`
	Source    string            `json:"source"` // "internal" or the external source name
	Ayanamsa  float64           `json:"ayanamsa"`
	Ascendant AscendantPosition `json:"ascendant"`
	Planets   []PlanetPosition  `json:"planets"` // AllPlanets order
	Houses    []HouseSlot       `json:"houses"`
	Navamsa   []HouseSlot       `json:"navamsa"` // D9
	Dasamsa   []HouseSlot       `json:"dasamsa"` // D10
	Dasha     []DashaPeriod     `json:"dasha"`
}

// Position returns the placement of p. The second value is false when the chart lacks it.
func (c *Chart) Position(p Planet) (PlanetPosition, bool) {
	for _, pos := range c.Planets {
		if pos.Planet == p {
			return pos, true
		}
	}
	return PlanetPosition{}, false
}
