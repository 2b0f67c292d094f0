package dasha

import (
	"strings"
	"time"

	"Jyotish/internal/model"
)

// ActiveAt returns the chain of periods containing t, from mahadasha down to the
// deepest level computed. It returns nil when t lies outside the tree.
func ActiveAt(periods []model.DashaPeriod, t time.Time) []model.DashaPeriod {
	var chain []model.DashaPeriod
	level := periods
	for len(level) > 0 {
		found := false
		for _, p := range level {
			if p.Contains(t) {
				chain = append(chain, p)
				level = p.Children
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}

// Walk visits every period depth-first, parents before children. Returning false from
// fn skips the period's children.
func Walk(periods []model.DashaPeriod, fn func(p model.DashaPeriod, parents []model.Planet) bool) {
	var visit func(ps []model.DashaPeriod, parents []model.Planet)
	visit = func(ps []model.DashaPeriod, parents []model.Planet) {
		for _, p := range ps {
			if !fn(p, parents) {
				continue
			}
			if len(p.Children) > 0 {
				visit(p.Children, append(parents[:len(parents):len(parents)], p.Planet))
			}
		}
	}
	visit(periods, nil)
}

// Count returns the number of nodes in the tree.
func Count(periods []model.DashaPeriod) int {
	n := 0
	Walk(periods, func(model.DashaPeriod, []model.Planet) bool {
		n++
		return true
	})
	return n
}

// Lineage renders a chain as "Mars/Rahu/Jupiter".
func Lineage(chain []model.DashaPeriod) string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Planet.String()
	}
	return strings.Join(names, "/")
}

// Truncate returns the first n periods of a chain, or the whole chain if it is shorter.
func Truncate(chain []model.DashaPeriod, n int) []model.DashaPeriod {
	if n < len(chain) {
		return chain[:n]
	}
	return chain
}

// Upcoming returns the periods at the given level that start after t, in order, up to limit.
func Upcoming(periods []model.DashaPeriod, level model.DashaLevel, t time.Time, limit int) []model.DashaPeriod {
	var out []model.DashaPeriod
	Walk(periods, func(p model.DashaPeriod, _ []model.Planet) bool {
		if limit > 0 && len(out) >= limit {
			return false
		}
		if p.End.Before(t) || p.End.Equal(t) {
			return false
		}
		if p.Level == level {
			if p.Start.After(t) {
				out = append(out, p)
			}
			return false
		}
		return true
	})
	return out
}
