package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"Jyotish/internal/chart"
	"Jyotish/internal/collector"
	"Jyotish/internal/model"
)

var errNoBirthData = errors.New("either --profile or --date/--time/--lat/--lon is required")

// addChartFlags registers the birth-data flags shared by chart, dasha and yogas.
func addChartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("profile", "", "profile name from the config file")
	f.String("date", "", "birth date, YYYY-MM-DD")
	f.String("time", "", "local birth time, HH:MM[:SS]")
	f.String("offset", "+00:00", "UTC offset of the birth time, e.g. +05:30 or -4")
	f.Float64("lat", 0, "birth latitude, north positive")
	f.Float64("lon", 0, "birth longitude, east positive")
	f.String("positions", "", "JSON file with externally computed positions")
	f.Int("depth", 0, "dasha depth 1-5 (default from config, else 3)")
	f.String("format", "text", "output format: text or json")
}

// birthInput resolves the birth data and a display title from the flags.
func birthInput(cmd *cobra.Command) (model.BirthInput, string, error) {
	f := cmd.Flags()
	if name, _ := f.GetString("profile"); name != "" {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return model.BirthInput{}, "", err
		}
		p, err := cfg.Profile(name)
		if err != nil {
			return model.BirthInput{}, "", err
		}
		in, err := p.BirthInput()
		return in, p.Name, err
	}

	date, _ := f.GetString("date")
	clock, _ := f.GetString("time")
	if date == "" || clock == "" || !f.Changed("lat") || !f.Changed("lon") {
		return model.BirthInput{}, "", errNoBirthData
	}
	offset, _ := f.GetString("offset")
	lat, _ := f.GetFloat64("lat")
	lon, _ := f.GetFloat64("lon")
	in, err := model.ParseBirthInput(date, clock, offset, lat, lon)
	return in, date + " " + clock, err
}

// buildChart computes the chart for the flags, from --positions when given.
func buildChart(cmd *cobra.Command) (*model.Chart, string, error) {
	in, title, err := birthInput(cmd)
	if err != nil {
		return nil, "", err
	}
	depth, _ := cmd.Flags().GetInt("depth")
	if depth == 0 {
		depth = 3
		if cfg, _, err := loadConfig(cmd); err == nil {
			depth = cfg.Engine.DashaDepth
		}
	}
	opts := []chart.Option{chart.WithDashaDepth(depth)}

	path, _ := cmd.Flags().GetString("positions")
	if path == "" {
		return chart.Compute(in, opts...), title, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read positions: %w", err)
	}
	ext, err := collector.ParsePositions(data)
	if err != nil {
		return nil, "", err
	}
	c, err := chart.ComputeWithPositions(in, ext, append(opts, chart.WithSourceName(filepath.Base(path)))...)
	if err != nil {
		return nil, "", err
	}
	return c, title, nil
}

// outputFormat validates --format.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q, want text or json", format)
	}
}
