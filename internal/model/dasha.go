package model

import (
	"fmt"
	"strings"
	"time"
)

// DashaLevel is the nesting depth of a Vimshottari period.
type DashaLevel int

const (
	Mahadasha DashaLevel = iota + 1
	Antardasha
	Pratyantardasha
	Sookshma
	Prana
)

// MaxDashaDepth is the deepest subdivision the calculator produces.
const MaxDashaDepth = int(Prana)

func (l DashaLevel) String() string {
	switch l {
	case Mahadasha:
		return "Mahadasha"
	case Antardasha:
		return "Antardasha"
	case Pratyantardasha:
		return "Pratyantardasha"
	case Sookshma:
		return "Sookshma"
	case Prana:
		return "Prana"
	default:
		return fmt.Sprintf("DashaLevel(%d)", int(l))
	}
}

func (l DashaLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *DashaLevel) UnmarshalText(b []byte) error {
	name := strings.TrimSpace(string(b))
	for v := Mahadasha; v <= Prana; v++ {
		if strings.EqualFold(v.String(), name) {
			*l = v
			return nil
		}
	}
	return fmt.Errorf("unknown dasha level %q", string(b))
}

// Balance describes how much of the first mahadasha remains at birth.
type Balance struct {
	Fraction float64 `json:"fraction"`
	Years    float64 `json:"years"`
	Days     float64 `json:"days"`
}

// DashaPeriod is a node in the period tree. Start/End are the effective bounds; for
// periods straddling birth the start is clamped to the birth instant while Years keeps
// the natural (unclipped) allocation.
type DashaPeriod struct {
	Planet   Planet        `json:"planet"`
	Level    DashaLevel    `json:"level"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Years    float64       `json:"years"`
	Balance  *Balance      `json:"balance,omitempty"`
	Children []DashaPeriod `json:"children,omitempty"`
}

// Contains reports whether t falls inside [Start, End).
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Duration returns the effective length of the period.
func (p DashaPeriod) Duration() time.Duration { return p.End.Sub(p.Start) }
