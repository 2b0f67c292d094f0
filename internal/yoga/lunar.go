package yoga

import "Jyotish/internal/model"

// Lunar yogas look at planets flanking the Moon; the Sun and nodes do not count.
var lunarFlank = except(model.AllPlanets, model.Moon, model.Sun, model.Rahu, model.Ketu)

var lunarRules = []Rule{
	{
		Name:       "Sunapha",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthModerate,
		Definition: "A planet other than the Sun or the nodes in the 2nd from the Moon.",
		Result:     "Self-earned wealth and a good reputation.",
		Match: func(s *Snapshot) Match {
			ps := s.InHouseFrom(model.Moon, 2, lunarFlank...)
			return when(len(ps) > 0, ps, s.House(model.Moon))
		},
	},
	{
		Name:       "Anapha",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthModerate,
		Definition: "A planet other than the Sun or the nodes in the 12th from the Moon.",
		Result:     "Good health, a pleasing personality and comforts.",
		Match: func(s *Snapshot) Match {
			ps := s.InHouseFrom(model.Moon, 12, lunarFlank...)
			return when(len(ps) > 0, ps, s.House(model.Moon))
		},
	},
	{
		Name:       "Durudhara",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthStrong,
		Definition: "Planets other than the Sun or the nodes in both the 2nd and 12th from the Moon.",
		Result:     "Wealth, vehicles and a generous nature.",
		Match: func(s *Snapshot) Match {
			second := s.InHouseFrom(model.Moon, 2, lunarFlank...)
			twelfth := s.InHouseFrom(model.Moon, 12, lunarFlank...)
			return when(len(second) > 0 && len(twelfth) > 0, append(second, twelfth...), s.House(model.Moon))
		},
	},
	{
		Name:       "Kemadruma",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthModerate,
		Definition: "No planet other than the Sun or the nodes in the 2nd, 12th or a quadrant from the Moon.",
		Result:     "Periods of struggle and isolation unless otherwise relieved.",
		Match: func(s *Snapshot) Match {
			for _, p := range lunarFlank {
				h := s.HouseFrom(p, model.Moon)
				if h == 2 || h == 12 || IsQuadrant(h) {
					return miss
				}
			}
			return hit([]model.Planet{model.Moon}, s.House(model.Moon))
		},
	},
	{
		Name:       "Gaja Kesari",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthStrong,
		Definition: "Jupiter in a quadrant from the Moon.",
		Result:     "Lasting fame, intelligence and influence.",
		Match: func(s *Snapshot) Match {
			return when(IsQuadrant(s.HouseFrom(model.Jupiter, model.Moon)),
				[]model.Planet{model.Moon, model.Jupiter}, s.House(model.Moon), s.House(model.Jupiter))
		},
	},
	{
		Name:       "Adhi",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthStrong,
		Definition: "Mercury, Jupiter and Venus all in the 6th, 7th or 8th from the Moon.",
		Result:     "Leadership, comfort and victory over opponents.",
		Match: func(s *Snapshot) Match {
			ps := []model.Planet{model.Mercury, model.Jupiter, model.Venus}
			for _, p := range ps {
				h := s.HouseFrom(p, model.Moon)
				if h < 6 || h > 8 {
					return miss
				}
			}
			return hit(ps, s.Houses(ps...)...)
		},
	},
	{
		Name:       "Shakata",
		Category:   model.CategoryLunar,
		Strength:   model.StrengthWeak,
		Definition: "Jupiter in the 6th, 8th or 12th from the Moon and not in a quadrant from the ascendant.",
		Result:     "Fortune that rises and falls like a cart wheel.",
		Match: func(s *Snapshot) Match {
			h := s.HouseFrom(model.Jupiter, model.Moon)
			return when(IsDusthana(h) && !IsQuadrant(s.House(model.Jupiter)),
				[]model.Planet{model.Moon, model.Jupiter}, s.House(model.Jupiter))
		},
	},
}
