package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Jyotish/internal/chart"
	"Jyotish/internal/notifier"
	"Jyotish/internal/yoga"
)

var yogasCmd = &cobra.Command{
	Use:   "yogas",
	Short: "Classify the yogas present in a birth chart",
	RunE:  runYogas,
}

func init() {
	addChartFlags(yogasCmd)
	yogasCmd.Flags().Bool("all", false, "list every rule, including those that do not apply")
	rootCmd.AddCommand(yogasCmd)
}

func runYogas(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	c, title, err := buildChart(cmd)
	if err != nil {
		return err
	}
	findings := chart.ClassifyYogas(c)
	if all, _ := cmd.Flags().GetBool("all"); all {
		findings = yoga.EvaluateAll(c)
	}
	if format == "json" {
		return writeJSON(cmd, findings)
	}
	fmt.Fprintln(cmd.OutOrStdout(), notifier.RenderYogas(title, findings))
	return nil
}
