package yoga

import "Jyotish/internal/model"

// Snapshot is a read-only view of a chart shaped for rule evaluation.
type Snapshot struct {
	asc    model.Sign
	sign   [9]model.Sign
	lon    [9]float64
	house  [9]int
	placed [9]bool
}

// NewSnapshot captures the facts the rules read from a chart.
func NewSnapshot(c *model.Chart) *Snapshot {
	s := &Snapshot{asc: c.Ascendant.Sign}
	for _, p := range c.Planets {
		if p.Planet < model.Sun || p.Planet > model.Ketu {
			continue
		}
		s.sign[p.Planet] = p.Sign
		s.lon[p.Planet] = p.Longitude
		h := p.House
		if h < 1 || h > 12 {
			h = houseFromSign(p.Sign, s.asc)
		}
		s.house[p.Planet] = h
		s.placed[p.Planet] = true
	}
	return s
}

func houseFromSign(sign, from model.Sign) int {
	return ((int(sign)-int(from))%12+12)%12 + 1
}

// Sign returns the sign p occupies.
func (s *Snapshot) Sign(p model.Planet) model.Sign { return s.sign[p] }

// Longitude returns the sidereal longitude of p.
func (s *Snapshot) Longitude(p model.Planet) float64 { return s.lon[p] }

// House returns the house of p counted from the ascendant.
func (s *Snapshot) House(p model.Planet) int { return s.house[p] }

// Placed reports whether the chart carried a position for p.
func (s *Snapshot) Placed(p model.Planet) bool { return s.placed[p] }

// HouseFrom returns the house p occupies counted from ref's sign (ref's own sign is 1).
func (s *Snapshot) HouseFrom(p, ref model.Planet) int {
	return houseFromSign(s.sign[p], s.sign[ref])
}

// HouseSign returns the sign of house h counted from the ascendant.
func (s *Snapshot) HouseSign(h int) model.Sign { return s.asc.Add(h - 1) }

// LordOfHouse returns the ruler of house h.
func (s *Snapshot) LordOfHouse(h int) model.Planet { return LordOf(s.HouseSign(h)) }

// InHouse lists the planets in house h, optionally limited to the given candidates.
func (s *Snapshot) InHouse(h int, among ...model.Planet) []model.Planet {
	if len(among) == 0 {
		among = model.AllPlanets
	}
	var out []model.Planet
	for _, p := range among {
		if s.placed[p] && s.house[p] == h {
			out = append(out, p)
		}
	}
	return out
}

// InHouseFrom lists the candidates that sit in house h counted from ref. ref itself is skipped.
func (s *Snapshot) InHouseFrom(ref model.Planet, h int, among ...model.Planet) []model.Planet {
	if len(among) == 0 {
		among = model.AllPlanets
	}
	var out []model.Planet
	for _, p := range among {
		if p == ref || !s.placed[p] {
			continue
		}
		if s.HouseFrom(p, ref) == h {
			out = append(out, p)
		}
	}
	return out
}

// Houses returns the distinct houses the planets occupy, in ascending order.
func (s *Snapshot) Houses(ps ...model.Planet) []int {
	var occupied houseSet
	for _, p := range ps {
		if s.placed[p] {
			occupied[s.house[p]] = true
		}
	}
	var out []int
	for h := 1; h <= 12; h++ {
		if occupied.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

// Conjunct reports whether a and b share a sign.
func (s *Snapshot) Conjunct(a, b model.Planet) bool { return s.sign[a] == s.sign[b] }

// Exchange reports whether a and b each occupy a sign ruled by the other.
func (s *Snapshot) Exchange(a, b model.Planet) bool {
	return a != b && LordOf(s.sign[a]) == b && LordOf(s.sign[b]) == a
}

// Dignified reports whether p is in its own or exaltation sign.
func (s *Snapshot) Dignified(p model.Planet) bool {
	return IsOwnSign(p, s.sign[p]) || IsExalted(p, s.sign[p])
}

// Debilitated reports whether p is in its debilitation sign.
func (s *Snapshot) Debilitated(p model.Planet) bool { return IsDebilitated(p, s.sign[p]) }

// except returns the planets of all that are not in skip.
func except(all []model.Planet, skip ...model.Planet) []model.Planet {
	out := make([]model.Planet, 0, len(all))
outer:
	for _, p := range all {
		for _, x := range skip {
			if p == x {
				continue outer
			}
		}
		out = append(out, p)
	}
	return out
}
