package model

// AscendantName is the entry name external providers use for the rising point.
const AscendantName = "Ascendant"

// ExternalPosition is one entry of a pre-fetched position list from an upstream
// ephemeris provider, already decoded from its wire form.
type ExternalPosition struct {
	Name       string  `json:"name"`
	FullDegree float64 `json:"fullDegree"`
	Sign       string  `json:"sign"`
	Nakshatra  string  `json:"nakshatra"`
	Pada       int     `json:"pada"`
	House      int     `json:"house"`
	Retrograde bool    `json:"isRetro"`
}
