package yoga

import "Jyotish/internal/model"

// mahapurusha builds a great-person yoga: p in its own or exaltation sign and in a quadrant.
func mahapurusha(name string, p model.Planet, result string) Rule {
	return Rule{
		Name:       name,
		Category:   model.CategoryMahapurusha,
		Strength:   model.StrengthStrong,
		Definition: p.String() + " in its own or exaltation sign in a quadrant from the ascendant.",
		Result:     result,
		Match: func(s *Snapshot) Match {
			h := s.House(p)
			return when(s.Dignified(p) && IsQuadrant(h), []model.Planet{p}, h)
		},
	}
}

var mahapurushaRules = []Rule{
	mahapurusha("Ruchaka", model.Mars, "Courage, physical strength and command."),
	mahapurusha("Bhadra", model.Mercury, "Learning, eloquence and commercial skill."),
	mahapurusha("Hamsa", model.Jupiter, "Wisdom, righteousness and respect."),
	mahapurusha("Malavya", model.Venus, "Beauty, refinement and material comfort."),
	mahapurusha("Sasa", model.Saturn, "Authority over many and endurance."),
}
