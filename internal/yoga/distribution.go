package yoga

import (
	"fmt"

	"Jyotish/internal/model"
)

func modalityRule(name string, m model.Modality, result string) Rule {
	return Rule{
		Name:       name,
		Category:   model.CategorySignDistribution,
		Strength:   model.StrengthModerate,
		Definition: fmt.Sprintf("All planets in %s signs.", m),
		Result:     result,
		Match: func(s *Snapshot) Match {
			for _, p := range model.AllPlanets {
				if !s.Placed(p) || s.Sign(p).Modality() != m {
					return miss
				}
			}
			return hit(model.AllPlanets, s.Houses(model.AllPlanets...)...)
		},
	}
}

var distributionRules = []Rule{
	modalityRule("Rajju", model.Movable, "Fond of travel and change; fortune abroad."),
	modalityRule("Musala", model.Fixed, "Steadfast, proud and accumulating."),
	modalityRule("Nala", model.Dual, "Adaptable and resourceful with many interests."),
}

// occupiedSigns counts the distinct signs held by the seven classical planets.
func occupiedSigns(s *Snapshot) int {
	var seen [12]bool
	n := 0
	for _, p := range classical {
		if sg := s.Sign(p); !seen[sg] {
			seen[sg] = true
			n++
		}
	}
	return n
}

func sankhya(name string, signs int, strength model.Strength, result string) Rule {
	return Rule{
		Name:       name,
		Category:   model.CategorySankhya,
		Strength:   strength,
		Definition: fmt.Sprintf("The seven classical planets occupy exactly %d sign(s).", signs),
		Result:     result,
		Match: func(s *Snapshot) Match {
			return when(occupiedSigns(s) == signs, classical, s.Houses(classical...)...)
		},
	}
}

var sankhyaRules = []Rule{
	sankhya("Gola", 1, model.StrengthWeak, "Hardship and dependence on others."),
	sankhya("Yuga", 2, model.StrengthWeak, "Unconventional views and uneven means."),
	sankhya("Shoola", 3, model.StrengthWeak, "Sharp temperament and conflict."),
	sankhya("Kedara", 4, model.StrengthModerate, "Prosperity through land and agriculture."),
	sankhya("Pasha", 5, model.StrengthModerate, "Skill in acquiring and binding resources."),
	sankhya("Dama", 6, model.StrengthStrong, "Generosity and a helpful disposition."),
	sankhya("Veena", 7, model.StrengthStrong, "Love of music and many accomplishments."),
}
