package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"Jyotish/internal/dasha"
	"Jyotish/internal/notifier"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Show the Vimshottari dasha periods and the chain running at a date",
	RunE:  runDasha,
}

func init() {
	addChartFlags(dashaCmd)
	dashaCmd.Flags().String("at", "", "date to evaluate, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(dashaCmd)
}

func runDasha(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	at := time.Now().UTC()
	if v, _ := cmd.Flags().GetString("at"); v != "" {
		if at, err = time.Parse("2006-01-02", v); err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}
	c, title, err := buildChart(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(cmd, map[string]any{
			"periods": c.Dasha,
			"active":  dasha.ActiveAt(c.Dasha, at),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), notifier.RenderDasha(title, c.Dasha, at))
	return nil
}
