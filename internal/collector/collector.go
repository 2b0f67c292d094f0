package collector

import (
	"context"
	"log"

	"Jyotish/internal/chart"
	"Jyotish/internal/model"
)

// MockSource returns fixed positions, or the internal calculation rendered as an
// external list when Positions is nil.
type MockSource struct {
	Positions []model.ExternalPosition
	Err       error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchPositions(_ context.Context, in model.BirthInput) ([]model.ExternalPosition, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Positions != nil {
		return m.Positions, nil
	}
	return chart.ToExternal(chart.Compute(in, chart.WithDashaDepth(1))), nil
}

// Collector builds charts from a position source, falling back to the internal
// calculator whenever the source fails or returns unusable data.
type Collector struct {
	Source  PositionSource
	Options []chart.Option
}

// NewCollector creates a new Collector. A nil source always computes internally.
func NewCollector(source PositionSource, opts ...chart.Option) *Collector {
	return &Collector{Source: source, Options: opts}
}

// Chart fetches positions once and assembles the chart. It only fails when ctx is done.
func (c *Collector) Chart(ctx context.Context, in model.BirthInput) (*model.Chart, error) {
	if c.Source == nil {
		return chart.Compute(in, c.Options...), nil
	}
	ext, err := c.Source.FetchPositions(ctx, in)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Printf("[WARN] %s positions unavailable: %v, computing internally", c.Source.Name(), err)
		return chart.Compute(in, c.Options...), nil
	}
	opts := append(append([]chart.Option(nil), c.Options...), chart.WithSourceName(c.Source.Name()))
	ch, err := chart.ComputeWithPositions(in, ext, opts...)
	if err != nil {
		log.Printf("[WARN] %s positions rejected: %v, computing internally", c.Source.Name(), err)
		return chart.Compute(in, c.Options...), nil
	}
	return ch, nil
}
