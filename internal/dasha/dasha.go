// Package dasha computes the Vimshottari period tree from the Moon's position at birth.
package dasha

import (
	"math"
	"time"

	"Jyotish/internal/calculator"
	"Jyotish/internal/model"
)

const (
	// TotalYears is the length of one full Vimshottari cycle.
	TotalYears = 120.0
	// DaysPerYear converts period years to days.
	DaysPerYear = 365.25
	// DefaultDepth is used when a caller asks for a depth outside 1..5.
	DefaultDepth = 3
)

// Years is each planet's fixed allocation within the 120-year cycle.
var Years = map[model.Planet]float64{
	model.Ketu:    7,
	model.Venus:   20,
	model.Sun:     6,
	model.Moon:    10,
	model.Mars:    7,
	model.Rahu:    18,
	model.Jupiter: 16,
	model.Saturn:  19,
	model.Mercury: 17,
}

// DefaultNakshatra is used when a mansion cannot be resolved. Ashwini is ruled by Ketu.
const DefaultNakshatra model.Nakshatra = 0

// Sequence returns the nine period rulers in cycle order starting at p.
func Sequence(p model.Planet) []model.Planet {
	start := 0
	for i, l := range calculator.NakshatraLords {
		if l == p {
			start = i
			break
		}
	}
	out := make([]model.Planet, len(calculator.NakshatraLords))
	for i := range out {
		out[i] = calculator.NakshatraLords[(start+i)%len(calculator.NakshatraLords)]
	}
	return out
}

// FromLongitude builds the tree from the Moon's exact sidereal longitude.
func FromLongitude(moonLon float64, birth time.Time, depth int) []model.DashaPeriod {
	nak, _, lord := calculator.NakshatraOf(moonLon)
	elapsed := (calculator.Normalize(moonLon) - calculator.NakshatraStart(nak)) / calculator.NakshatraSpan
	return build(lord, elapsed, birth, depth)
}

// FromNakshatra builds the tree when only the Moon's mansion and pada are known. The
// Moon is taken to sit at the middle of the pada. Out-of-range mansions fall back to
// DefaultNakshatra and padas are clamped to 1..4.
func FromNakshatra(n model.Nakshatra, pada int, birth time.Time, depth int) []model.DashaPeriod {
	if n < 0 || int(n) >= model.NakshatraCount {
		n = DefaultNakshatra
	}
	pada = min(max(pada, 1), 4)
	elapsed := (float64(pada) - 0.5) / 4
	return build(calculator.NakshatraLord(n), elapsed, birth, depth)
}

// FromNakshatraName is FromNakshatra for free-text mansion names. Unrecognised names
// resolve to DefaultNakshatra rather than failing.
func FromNakshatraName(name string, pada int, birth time.Time, depth int) []model.DashaPeriod {
	n, ok := calculator.NakshatraByName(name)
	if !ok {
		n = DefaultNakshatra
	}
	return FromNakshatra(n, pada, birth, depth)
}

// ClampDepth maps any requested depth into 1..MaxDashaDepth, using DefaultDepth for
// non-positive requests.
func ClampDepth(depth int) int {
	if depth <= 0 {
		return DefaultDepth
	}
	return min(depth, model.MaxDashaDepth)
}

// build lays out the nine mahadashas. The first one started before birth: its natural
// span begins elapsed·allocation earlier, and every boundary in the tree is measured in
// days from that natural start so rounding never compounds across levels.
func build(lord model.Planet, elapsed float64, birth time.Time, depth int) []model.DashaPeriod {
	depth = ClampDepth(depth)
	birth = birth.UTC()
	elapsed = min(max(elapsed, 0), 1)

	first := Years[lord] * DaysPerYear
	anchor := at(birth, -elapsed*first)

	seq := Sequence(lord)
	bounds := make([]float64, len(seq)+1)
	for i, p := range seq {
		bounds[i+1] = bounds[i] + Years[p]*DaysPerYear
	}

	b := builder{anchor: anchor, birth: birth, depth: depth}
	periods := make([]model.DashaPeriod, 0, len(seq))
	for i, p := range seq {
		periods = append(periods, b.period(p, model.Mahadasha, bounds[i], bounds[i+1]))
	}

	remaining := 1 - elapsed
	periods[0].Balance = &model.Balance{
		Fraction: remaining,
		Years:    remaining * Years[lord],
		Days:     remaining * first,
	}
	return periods
}

type builder struct {
	anchor time.Time
	birth  time.Time
	depth  int
}

// period builds one node spanning [from, to) days after the anchor, then subdivides the
// full natural span. Children that end at or before birth are dropped and a node that
// straddles birth has its start clamped to the birth instant.
func (b builder) period(p model.Planet, level model.DashaLevel, from, to float64) model.DashaPeriod {
	node := model.DashaPeriod{
		Planet: p,
		Level:  level,
		Start:  at(b.anchor, from),
		End:    at(b.anchor, to),
		Years:  (to - from) / DaysPerYear,
	}
	if node.Start.Before(b.birth) {
		node.Start = b.birth
	}
	if int(level) >= b.depth {
		return node
	}

	seq := Sequence(p)
	bounds := make([]float64, len(seq)+1)
	bounds[0] = from
	for i, c := range seq {
		bounds[i+1] = bounds[i] + (to-from)*Years[c]/TotalYears
	}
	bounds[len(seq)] = to

	node.Children = make([]model.DashaPeriod, 0, len(seq))
	for i, c := range seq {
		if !at(b.anchor, bounds[i+1]).After(b.birth) {
			continue
		}
		node.Children = append(node.Children, b.period(c, level+1, bounds[i], bounds[i+1]))
	}
	return node
}

// at offsets t by a fractional number of days, rounded to the nanosecond.
func at(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(math.Round(days * 24 * float64(time.Hour))))
}
