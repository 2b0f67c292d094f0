package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Jyotish/internal/calculator"
	"Jyotish/internal/model"
)

// ErrInvalidPositions is wrapped by every ValidationError.
var ErrInvalidPositions = errors.New("invalid external positions")

// ValidationError lists every problem found in an external position list.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidPositions, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidPositions }

// convert validates an external list and returns the ascendant and the nine planets in
// chart order. Entries for bodies outside the nine grahas are ignored. Sign, mansion and
// house are re-derived from the absolute degree.
func convert(ext []model.ExternalPosition) (model.AscendantPosition, []model.PlanetPosition, error) {
	var (
		problems []string
		asc      model.AscendantPosition
		hasAsc   bool
		byPlanet = make(map[model.Planet]model.PlanetPosition, len(model.AllPlanets))
	)
	for i, e := range ext {
		name := strings.TrimSpace(e.Name)
		if math.IsNaN(e.FullDegree) || math.IsInf(e.FullDegree, 0) {
			problems = append(problems, fmt.Sprintf("entry %d (%s): degree is not a finite number", i, name))
			continue
		}
		if e.House < 0 || e.House > 12 {
			problems = append(problems, fmt.Sprintf("entry %d (%s): house %d out of range", i, name, e.House))
			continue
		}
		if strings.EqualFold(name, model.AscendantName) {
			if hasAsc {
				problems = append(problems, "duplicate ascendant")
				continue
			}
			asc, hasAsc = calculator.NewAscendant(e.FullDegree), true
			continue
		}
		p, ok := model.ParsePlanet(name)
		if !ok {
			continue
		}
		if _, dup := byPlanet[p]; dup {
			problems = append(problems, fmt.Sprintf("duplicate entry for %s", p))
			continue
		}
		byPlanet[p] = calculator.NewPosition(p, e.FullDegree, e.Retrograde)
	}
	if !hasAsc {
		problems = append(problems, "missing ascendant")
	}
	planets := make([]model.PlanetPosition, 0, len(model.AllPlanets))
	for _, p := range model.AllPlanets {
		pos, ok := byPlanet[p]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing %s", p))
			continue
		}
		planets = append(planets, pos)
	}
	if len(problems) > 0 {
		return model.AscendantPosition{}, nil, &ValidationError{Problems: problems}
	}
	return asc, planets, nil
}

// ToExternal renders a chart's primary positions in the external list shape.
func ToExternal(c *model.Chart) []model.ExternalPosition {
	out := make([]model.ExternalPosition, 0, len(c.Planets)+1)
	out = append(out, model.ExternalPosition{
		Name:       model.AscendantName,
		FullDegree: c.Ascendant.Longitude,
		Sign:       c.Ascendant.Sign.String(),
		Nakshatra:  c.Ascendant.Nakshatra.String(),
		Pada:       c.Ascendant.Pada,
		House:      1,
	})
	for _, p := range c.Planets {
		out = append(out, model.ExternalPosition{
			Name:       p.Planet.String(),
			FullDegree: p.Longitude,
			Sign:       p.Sign.String(),
			Nakshatra:  p.Nakshatra.String(),
			Pada:       p.Pada,
			House:      p.House,
			Retrograde: p.Retrograde,
		})
	}
	return out
}
