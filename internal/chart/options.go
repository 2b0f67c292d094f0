package chart

import "Jyotish/internal/dasha"

// Option configures chart assembly.
type Option func(*config)

type config struct {
	DashaDepth int
	SourceName string // label stored on charts built from external positions
}

// WithDashaDepth sets how many dasha levels to build (1..5). Out-of-range values are clamped.
func WithDashaDepth(depth int) Option {
	return func(c *config) {
		c.DashaDepth = dasha.ClampDepth(depth)
	}
}

// WithSourceName labels charts built from external positions.
func WithSourceName(name string) Option {
	return func(c *config) {
		c.SourceName = name
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		DashaDepth: dasha.DefaultDepth,
		SourceName: "external",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
