// Package yoga classifies classical planetary combinations in a chart.
//
// Every rule is an independent predicate over a Snapshot. Rules are listed in
// evaluation order in Rules; adding a yoga is one entry there.
package yoga

import "Jyotish/internal/model"

// Rule is one yoga definition with a fixed category and strength tier.
type Rule struct {
	Name       string
	Category   model.YogaCategory
	Strength   model.Strength
	Definition string
	Result     string
	Match      func(s *Snapshot) Match
}

// Match is what a rule predicate reports: whether it holds and which
// planets and houses formed it.
type Match struct {
	OK      bool
	Planets []model.Planet
	Houses  []int
}

var miss = Match{}

func hit(planets []model.Planet, houses ...int) Match {
	return Match{OK: true, Planets: planets, Houses: houses}
}

func when(ok bool, planets []model.Planet, houses ...int) Match {
	if !ok {
		return miss
	}
	return hit(planets, houses...)
}

// Evaluate runs the rule against a snapshot.
func (r Rule) Evaluate(s *Snapshot) model.YogaFinding {
	m := r.Match(s)
	f := model.YogaFinding{
		Name:       r.Name,
		Category:   r.Category,
		Definition: r.Definition,
		Result:     r.Result,
		Applicable: m.OK,
		Strength:   r.Strength,
	}
	if m.OK {
		f.Planets = m.Planets
		f.Houses = m.Houses
	}
	return f
}

// Rules is the ordered registry of all yoga rules.
var Rules = concat(
	solarRules,
	lunarRules,
	mahapurushaRules,
	conjunctionRules,
	distributionRules,
	sankhyaRules,
	wealthRules,
	reversalRules,
)

func concat(groups ...[]Rule) []Rule {
	var out []Rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// EvaluateAll returns one finding per rule, applicable or not.
func EvaluateAll(c *model.Chart) []model.YogaFinding {
	s := NewSnapshot(c)
	out := make([]model.YogaFinding, 0, len(Rules))
	for _, r := range Rules {
		out = append(out, r.Evaluate(s))
	}
	return out
}

// Classify returns the applicable findings in rule order.
func Classify(c *model.Chart) []model.YogaFinding {
	var out []model.YogaFinding
	for _, f := range EvaluateAll(c) {
		if f.Applicable {
			out = append(out, f)
		}
	}
	return out
}

// ByCategory filters findings to one category.
func ByCategory(findings []model.YogaFinding, cat model.YogaCategory) []model.YogaFinding {
	var out []model.YogaFinding
	for _, f := range findings {
		if f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}
