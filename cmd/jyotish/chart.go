package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"Jyotish/internal/notifier"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a birth chart with its D9 and D10 divisional charts",
	Example: "  jyotish chart --date 1997-02-08 --time 07:47 --offset +05:30 --lat 22.5726 --lon 88.3639\n" +
		"  jyotish chart --profile asha --format json",
	RunE: runChart,
}

func init() {
	addChartFlags(chartCmd)
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	c, title, err := buildChart(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(cmd, c)
	}
	fmt.Fprintln(cmd.OutOrStdout(), notifier.RenderChart(title, c))
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
