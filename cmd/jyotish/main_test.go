package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"Jyotish/internal/chart"
	"Jyotish/internal/model"
)

var kolkata = model.BirthInput{
	Year: 1997, Month: 2, Day: 8,
	Hour: 7, Minute: 47,
	UTCOffset: 5.5,
	Latitude:  22.5726,
	Longitude: 88.3639,
}

func newTestCommand(t *testing.T, run func(*cobra.Command, []string) error, flags map[string]string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: run}
	cmd.Flags().String("config", filepath.Join(t.TempDir(), "missing.yaml"), "")
	addChartFlags(cmd)
	cmd.Flags().String("at", "", "")
	cmd.Flags().Bool("all", false, "")
	for k, v := range flags {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set --%s: %v", k, err)
		}
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

var kolkataFlags = map[string]string{
	"date":   "1997-02-08",
	"time":   "07:47",
	"offset": "+05:30",
	"lat":    "22.5726",
	"lon":    "88.3639",
}

func withFlags(extra map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range kolkataFlags {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func TestBirthInput_RequiresData(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
	}{
		{"nothing", nil},
		{"no coordinates", map[string]string{"date": "1997-02-08", "time": "07:47"}},
		{"no time", map[string]string{"date": "1997-02-08", "lat": "1", "lon": "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCommand(t, nil, tt.flags)
			if _, _, err := birthInput(cmd); !errors.Is(err, errNoBirthData) {
				t.Errorf("err = %v, want errNoBirthData", err)
			}
		})
	}
}

func TestBuildChart_FromFlags(t *testing.T) {
	cmd, _ := newTestCommand(t, nil, withFlags(map[string]string{"depth": "2"}))
	got, title, err := buildChart(cmd)
	if err != nil {
		t.Fatalf("buildChart: %v", err)
	}
	if title != "1997-02-08 07:47" {
		t.Errorf("title = %q", title)
	}
	if diff := cmp.Diff(chart.Compute(kolkata, chart.WithDashaDepth(2)), got); diff != "" {
		t.Errorf("chart mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildChart_FromProfile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgData := `
engine:
  dasha_depth: 1
profiles:
  - name: Asha
    date: "1997-02-08"
    time: "07:47"
    utc_offset: "+05:30"
    latitude: 22.5726
    longitude: 88.3639
`
	if err := os.WriteFile(cfgPath, []byte(cfgData), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, _ := newTestCommand(t, nil, map[string]string{"config": cfgPath, "profile": "asha"})
	got, title, err := buildChart(cmd)
	if err != nil {
		t.Fatalf("buildChart: %v", err)
	}
	if title != "Asha" {
		t.Errorf("title = %q", title)
	}
	if diff := cmp.Diff(chart.Compute(kolkata, chart.WithDashaDepth(1)), got); diff != "" {
		t.Errorf("chart mismatch (-want +got):\n%s", diff)
	}

	cmd, _ = newTestCommand(t, nil, map[string]string{"config": cfgPath, "profile": "nobody"})
	if _, _, err := buildChart(cmd); err == nil || !strings.Contains(err.Error(), "unknown profile") {
		t.Errorf("expected unknown profile error, got %v", err)
	}
}

func TestBuildChart_FromPositionsFile(t *testing.T) {
	want := chart.Compute(kolkata)
	data, err := json.Marshal(map[string]any{"positions": chart.ToExternal(want)})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "ephemeris.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, _ := newTestCommand(t, nil, withFlags(map[string]string{"positions": path}))
	got, _, err := buildChart(cmd)
	if err != nil {
		t.Fatalf("buildChart: %v", err)
	}
	if got.Source != "ephemeris.json" {
		t.Errorf("source = %q", got.Source)
	}
	if diff := cmp.Diff(want.Planets, got.Planets); diff != "" {
		t.Errorf("planets mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(path, []byte(`{"positions": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := buildChart(cmd); !errors.Is(err, chart.ErrInvalidPositions) {
		t.Errorf("err = %v, want ErrInvalidPositions", err)
	}
}

func TestRunCommands(t *testing.T) {
	tests := []struct {
		name  string
		run   func(*cobra.Command, []string) error
		flags map[string]string
		want  []string
	}{
		{"chart text", runChart, nil, []string{"Asc", "Navamsa"}},
		{"chart json", runChart, map[string]string{"format": "json"}, []string{`"ascendant"`, `"navamsa"`, `"dasamsa"`}},
		{"dasha text", runDasha, map[string]string{"at": "2025-06-01"}, []string{"Active at 2025-06-01"}},
		{"dasha json", runDasha, map[string]string{"at": "2025-06-01", "format": "json"}, []string{`"active"`, `"periods"`}},
		{"yogas", runYogas, nil, []string{"yoga(s)"}},
		{"all yogas", runYogas, map[string]string{"all": "true"}, []string{"Kemadruma", "Veena"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCommand(t, tt.run, withFlags(tt.flags))
			if err := tt.run(cmd, nil); err != nil {
				t.Fatalf("run: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q", w)
				}
			}
		})
	}
}

func TestRunChart_BadFormat(t *testing.T) {
	cmd, _ := newTestCommand(t, runChart, withFlags(map[string]string{"format": "xml"}))
	if err := runChart(cmd, nil); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected format error, got %v", err)
	}
}
