package yoga

import "Jyotish/internal/model"

// Solar yogas look at planets flanking the Sun; the Moon and nodes do not count.
var solarFlank = except(model.AllPlanets, model.Sun, model.Moon, model.Rahu, model.Ketu)

var solarRules = []Rule{
	{
		Name:       "Vesi",
		Category:   model.CategorySolar,
		Strength:   model.StrengthModerate,
		Definition: "A planet other than the Moon or the nodes in the 2nd from the Sun.",
		Result:     "Balanced outlook, truthful and industrious.",
		Match: func(s *Snapshot) Match {
			ps := s.InHouseFrom(model.Sun, 2, solarFlank...)
			return when(len(ps) > 0, ps, s.House(model.Sun))
		},
	},
	{
		Name:       "Vasi",
		Category:   model.CategorySolar,
		Strength:   model.StrengthModerate,
		Definition: "A planet other than the Moon or the nodes in the 12th from the Sun.",
		Result:     "Charitable, skilled and well regarded.",
		Match: func(s *Snapshot) Match {
			ps := s.InHouseFrom(model.Sun, 12, solarFlank...)
			return when(len(ps) > 0, ps, s.House(model.Sun))
		},
	},
	{
		Name:       "Ubhayachari",
		Category:   model.CategorySolar,
		Strength:   model.StrengthStrong,
		Definition: "Planets other than the Moon or the nodes in both the 2nd and 12th from the Sun.",
		Result:     "Eloquent, prosperous and of royal bearing.",
		Match: func(s *Snapshot) Match {
			second := s.InHouseFrom(model.Sun, 2, solarFlank...)
			twelfth := s.InHouseFrom(model.Sun, 12, solarFlank...)
			return when(len(second) > 0 && len(twelfth) > 0, append(second, twelfth...), s.House(model.Sun))
		},
	},
	{
		Name:       "Budhaditya",
		Category:   model.CategorySolar,
		Strength:   model.StrengthModerate,
		Definition: "Sun and Mercury in the same sign.",
		Result:     "Sharp intellect and skill in communication.",
		Match: func(s *Snapshot) Match {
			return when(s.Conjunct(model.Sun, model.Mercury),
				[]model.Planet{model.Sun, model.Mercury}, s.House(model.Sun))
		},
	},
}
