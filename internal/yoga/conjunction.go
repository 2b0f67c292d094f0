package yoga

import (
	"math"

	"Jyotish/internal/model"
)

var (
	nodes      = []model.Planet{model.Rahu, model.Ketu}
	naturalBen = []model.Planet{model.Mercury, model.Jupiter, model.Venus}
	naturalMal = []model.Planet{model.Sun, model.Mars, model.Saturn, model.Rahu, model.Ketu}
)

// conjunctWith returns the members of among sharing a sign with p.
func conjunctWith(s *Snapshot, p model.Planet, among []model.Planet) []model.Planet {
	var out []model.Planet
	for _, q := range among {
		if q != p && s.Conjunct(p, q) {
			out = append(out, q)
		}
	}
	return out
}

func nodeAffliction(name string, subjects []model.Planet, def, result string) Rule {
	return Rule{
		Name:       name,
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthWeak,
		Definition: def,
		Result:     result,
		Match: func(s *Snapshot) Match {
			for _, p := range subjects {
				if ns := conjunctWith(s, p, nodes); len(ns) > 0 {
					return hit(append([]model.Planet{p}, ns...), s.House(p))
				}
			}
			return miss
		},
	}
}

var conjunctionRules = []Rule{
	{
		Name:       "Raja",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthStrong,
		Definition: "Lords of a quadrant and a trine, being different planets, in the same sign.",
		Result:     "Rise in status, authority and recognition.",
		Match: func(s *Snapshot) Match {
			for _, k := range []int{1, 4, 7, 10} {
				for _, t := range []int{5, 9} {
					kl, tl := s.LordOfHouse(k), s.LordOfHouse(t)
					if kl != tl && s.Conjunct(kl, tl) {
						return hit([]model.Planet{kl, tl}, k, t)
					}
				}
			}
			return miss
		},
	},
	{
		Name:       "Dharma-Karmadhipati",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthStrong,
		Definition: "Lords of the 9th and 10th houses conjunct or in exchange of signs.",
		Result:     "Purposeful career guided by principle.",
		Match: func(s *Snapshot) Match {
			l9, l10 := s.LordOfHouse(9), s.LordOfHouse(10)
			if l9 == l10 {
				return miss
			}
			return when(s.Conjunct(l9, l10) || s.Exchange(l9, l10), []model.Planet{l9, l10}, 9, 10)
		},
	},
	{
		Name:       "Amala",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthModerate,
		Definition: "A natural benefic in the 10th from the ascendant or from the Moon.",
		Result:     "Spotless reputation and ethical conduct.",
		Match: func(s *Snapshot) Match {
			if ps := s.InHouse(10, naturalBen...); len(ps) > 0 {
				return hit(ps, 10)
			}
			ps := s.InHouseFrom(model.Moon, 10, naturalBen...)
			return when(len(ps) > 0, ps, s.Houses(ps...)...)
		},
	},
	{
		Name:       "Parvata",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthModerate,
		Definition: "Benefics in quadrants with the 6th and 8th houses empty or holding only benefics.",
		Result:     "Prosperity, eloquence and a charitable nature.",
		Match: func(s *Snapshot) Match {
			var inKendra []model.Planet
			for _, p := range naturalBen {
				if IsQuadrant(s.House(p)) {
					inKendra = append(inKendra, p)
				}
			}
			if len(inKendra) == 0 {
				return miss
			}
			for _, h := range []int{6, 8} {
				for _, p := range s.InHouse(h) {
					if IsMalefic(p) {
						return miss
					}
				}
			}
			return hit(inKendra, s.Houses(inKendra...)...)
		},
	},
	{
		Name:       "Kahala",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthModerate,
		Definition: "Lords of the 4th and 9th in mutual quadrants with the ascendant lord dignified.",
		Result:     "Boldness and command over others.",
		Match: func(s *Snapshot) Match {
			l4, l9, l1 := s.LordOfHouse(4), s.LordOfHouse(9), s.LordOfHouse(1)
			return when(IsQuadrant(s.HouseFrom(l9, l4)) && s.Dignified(l1),
				[]model.Planet{l4, l9, l1}, 4, 9)
		},
	},
	{
		Name:       "Parivartana",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthModerate,
		Definition: "Two planets each occupying a sign ruled by the other.",
		Result:     "The affairs of both houses strengthen each other.",
		Match: func(s *Snapshot) Match {
			for i, a := range classical {
				for _, b := range classical[i+1:] {
					if s.Exchange(a, b) {
						return hit([]model.Planet{a, b}, s.House(a), s.House(b))
					}
				}
			}
			return miss
		},
	},
	{
		Name:       "Shubha Kartari",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthModerate,
		Definition: "Natural benefics in both the 2nd and 12th houses.",
		Result:     "The self is protected and supported.",
		Match: func(s *Snapshot) Match {
			second, twelfth := s.InHouse(2, naturalBen...), s.InHouse(12, naturalBen...)
			return when(len(second) > 0 && len(twelfth) > 0, append(second, twelfth...), 2, 12)
		},
	},
	{
		Name:       "Papa Kartari",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthWeak,
		Definition: "Natural malefics in both the 2nd and 12th houses.",
		Result:     "The self is hemmed in by obstacles.",
		Match: func(s *Snapshot) Match {
			second, twelfth := s.InHouse(2, naturalMal...), s.InHouse(12, naturalMal...)
			return when(len(second) > 0 && len(twelfth) > 0, append(second, twelfth...), 2, 12)
		},
	},
	nodeAffliction("Grahan", []model.Planet{model.Sun, model.Moon},
		"Sun or Moon in the same sign as Rahu or Ketu.",
		"Eclipsed vitality or mind; periods of confusion."),
	nodeAffliction("Guru-Chandal", []model.Planet{model.Jupiter},
		"Jupiter in the same sign as Rahu or Ketu.",
		"Unorthodox beliefs and tested judgement."),
	nodeAffliction("Angarak", []model.Planet{model.Mars},
		"Mars in the same sign as Rahu or Ketu.",
		"Impulsive energy and a quick temper."),
	{
		Name:       "Kala Sarpa",
		Category:   model.CategoryConjunction,
		Strength:   model.StrengthStrong,
		Definition: "All seven classical planets on one side of the Rahu-Ketu axis.",
		Result:     "Intense karmic pressure with sudden rises and falls.",
		Match: func(s *Snapshot) Match {
			rahu := s.Longitude(model.Rahu)
			var ahead, behind int
			for _, p := range classical {
				d := math.Mod(s.Longitude(p)-rahu+360, 360)
				switch {
				case d > 0 && d < 180:
					ahead++
				case d > 180:
					behind++
				}
			}
			return when(ahead == len(classical) || behind == len(classical), nodes, s.Houses(nodes...)...)
		},
	},
}
