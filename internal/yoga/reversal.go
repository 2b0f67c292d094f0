package yoga

import (
	"fmt"

	"Jyotish/internal/model"
)

func viparita(name string, house int, result string) Rule {
	return Rule{
		Name:       name,
		Category:   model.CategoryReversal,
		Strength:   model.StrengthModerate,
		Definition: fmt.Sprintf("Lord of the %dth in the 6th, 8th or 12th house.", house),
		Result:     result,
		Match: func(s *Snapshot) Match {
			l := s.LordOfHouse(house)
			h := s.House(l)
			return when(IsDusthana(h), []model.Planet{l}, house, h)
		},
	}
}

var reversalRules = []Rule{
	viparita("Harsha", 6, "Victory over enemies and good health."),
	viparita("Sarala", 8, "Fearlessness and long life."),
	viparita("Vimala", 12, "Frugal, independent and of good conduct."),
	{
		Name:       "Neecha Bhanga",
		Category:   model.CategoryReversal,
		Strength:   model.StrengthStrong,
		Definition: "A debilitated planet whose debilitation or exaltation sign lord is in a quadrant from the ascendant or the Moon.",
		Result:     "Early weakness turned into later strength.",
		Match: func(s *Snapshot) Match {
			for _, p := range classical {
				if !s.Debilitated(p) {
					continue
				}
				deb, _ := DebilitationSign(p)
				for _, l := range []model.Planet{LordOf(deb), LordOf(exaltation[p])} {
					if l == p {
						continue
					}
					if IsQuadrant(s.House(l)) || IsQuadrant(s.HouseFrom(l, model.Moon)) {
						return hit([]model.Planet{p, l}, s.House(p))
					}
				}
			}
			return miss
		},
	},
}
