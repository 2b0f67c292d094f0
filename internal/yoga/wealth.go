package yoga

import "Jyotish/internal/model"

var wealthRules = []Rule{
	{
		Name:       "Dhana",
		Category:   model.CategoryWealth,
		Strength:   model.StrengthModerate,
		Definition: "Lords of the 2nd and 11th conjunct, or either placed in the other's house.",
		Result:     "Accumulation of wealth and steady income.",
		Match: func(s *Snapshot) Match {
			l2, l11 := s.LordOfHouse(2), s.LordOfHouse(11)
			ok := (l2 != l11 && s.Conjunct(l2, l11)) || s.House(l2) == 11 || s.House(l11) == 2
			return when(ok, []model.Planet{l2, l11}, 2, 11)
		},
	},
	{
		Name:       "Lakshmi",
		Category:   model.CategoryWealth,
		Strength:   model.StrengthStrong,
		Definition: "Lord of the 9th dignified in a quadrant or trine, with Venus dignified.",
		Result:     "Abundance, grace and good fortune.",
		Match: func(s *Snapshot) Match {
			l9 := s.LordOfHouse(9)
			h := s.House(l9)
			ok := s.Dignified(l9) && (IsQuadrant(h) || IsTrine(h)) && s.Dignified(model.Venus)
			return when(ok, []model.Planet{l9, model.Venus}, 9, h)
		},
	},
	{
		Name:       "Saraswati",
		Category:   model.CategoryWealth,
		Strength:   model.StrengthStrong,
		Definition: "Jupiter, Venus and Mercury all in quadrants, trines or the 2nd house.",
		Result:     "Learning, artistic talent and eloquence.",
		Match: func(s *Snapshot) Match {
			ps := []model.Planet{model.Jupiter, model.Venus, model.Mercury}
			for _, p := range ps {
				h := s.House(p)
				if !IsQuadrant(h) && !IsTrine(h) && h != 2 {
					return miss
				}
			}
			return hit(ps, s.Houses(ps...)...)
		},
	},
	{
		Name:       "Chandra-Mangala",
		Category:   model.CategoryWealth,
		Strength:   model.StrengthModerate,
		Definition: "Moon and Mars in the same sign or in mutual 7th.",
		Result:     "Earnings through enterprise and trade.",
		Match: func(s *Snapshot) Match {
			h := s.HouseFrom(model.Mars, model.Moon)
			return when(h == 1 || h == 7, []model.Planet{model.Moon, model.Mars},
				s.Houses(model.Moon, model.Mars)...)
		},
	},
	{
		Name:       "Vasumati",
		Category:   model.CategoryWealth,
		Strength:   model.StrengthModerate,
		Definition: "Mercury, Jupiter and Venus all in houses of growth from the Moon.",
		Result:     "Self-made wealth that grows over time.",
		Match: func(s *Snapshot) Match {
			ps := []model.Planet{model.Mercury, model.Jupiter, model.Venus}
			for _, p := range ps {
				if !IsUpachaya(s.HouseFrom(p, model.Moon)) {
					return miss
				}
			}
			return hit(ps, s.Houses(ps...)...)
		},
	},
}
