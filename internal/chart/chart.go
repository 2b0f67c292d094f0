// Package chart assembles a complete birth chart from the calculator, organizer
// and dasha packages. Yoga classification is left to callers.
package chart

import (
	"time"

	"Jyotish/internal/calculator"
	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
	"Jyotish/internal/organizer"
	"Jyotish/internal/yoga"
)

// SourceInternal marks charts whose positions came from the built-in calculator.
const SourceInternal = "internal"

// Compute builds a chart entirely from the internal approximations.
func Compute(in model.BirthInput, opts ...Option) *model.Chart {
	cfg := applyOptions(opts)
	asc, planets := calculator.CalculatePositions(in)
	return assemble(in, SourceInternal, asc, planets, cfg)
}

// ComputeWithPositions builds a chart from pre-fetched primary positions. Houses,
// both divisional charts and the dasha tree are always derived locally. It returns a
// *ValidationError when the list cannot yield an ascendant and all nine planets;
// callers are expected to fall back to Compute.
func ComputeWithPositions(in model.BirthInput, ext []model.ExternalPosition, opts ...Option) (*model.Chart, error) {
	cfg := applyOptions(opts)
	asc, planets, err := convert(ext)
	if err != nil {
		return nil, err
	}
	return assemble(in, cfg.SourceName, asc, planets, cfg), nil
}

// ComputeDashaTree builds a dasha tree when only the Moon's mansion name and pada are known.
func ComputeDashaTree(nakshatra string, pada int, birth time.Time, depth int) []model.DashaPeriod {
	return dasha.FromNakshatraName(nakshatra, pada, birth, depth)
}

// ClassifyYogas returns the applicable yogas of an assembled chart.
func ClassifyYogas(c *model.Chart) []model.YogaFinding {
	return yoga.Classify(c)
}

func assemble(in model.BirthInput, source string, asc model.AscendantPosition, planets []model.PlanetPosition, cfg *config) *model.Chart {
	birth := in.UTC()
	placed, houses := organizer.Assign(asc.Sign, planets)
	c := &model.Chart{
		Input:     in,
		Source:    source,
		Ayanamsa:  calculator.Ayanamsa(birth),
		Ascendant: asc,
		Planets:   placed,
		Houses:    houses,
		Navamsa:   organizer.Navamsa.Chart(asc, placed),
		Dasamsa:   organizer.Dasamsa.Chart(asc, placed),
	}
	if moon, ok := c.Position(model.Moon); ok {
		c.Dasha = dasha.FromLongitude(moon.Longitude, birth, cfg.DashaDepth)
	}
	return c
}
