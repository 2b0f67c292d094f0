package chart

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"Jyotish/internal/calculator"
	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
	"Jyotish/internal/organizer"
)

var kolkata = model.BirthInput{
	Year: 1997, Month: 2, Day: 8,
	Hour: 7, Minute: 47,
	UTCOffset: 5.5,
	Latitude:  22.5726,
	Longitude: 88.3639,
}

func checkHouses(t *testing.T, label string, slots []model.HouseSlot) {
	t.Helper()
	if len(slots) != organizer.HouseCount {
		t.Fatalf("%s: got %d houses, want 12", label, len(slots))
	}
	seen := map[model.Planet]int{}
	for i, s := range slots {
		if s.Number != i+1 {
			t.Errorf("%s: slot %d numbered %d", label, i, s.Number)
		}
		if s.Sign != slots[0].Sign.Add(i) {
			t.Errorf("%s: house %d sign %v breaks rotation", label, s.Number, s.Sign)
		}
		for _, p := range s.Planets {
			seen[p.Planet]++
			if p.Sign != s.Sign {
				t.Errorf("%s: %v in %v placed in house of %v", label, p.Planet, p.Sign, s.Sign)
			}
		}
	}
	for _, p := range model.AllPlanets {
		if seen[p] != 1 {
			t.Errorf("%s: %v placed %d times", label, p, seen[p])
		}
	}
}

func TestCompute_Kolkata(t *testing.T) {
	c := Compute(kolkata)
	if c.Source != SourceInternal {
		t.Errorf("source = %q", c.Source)
	}
	if len(c.Planets) != 9 {
		t.Fatalf("got %d planets", len(c.Planets))
	}
	for i, p := range c.Planets {
		if p.Planet != model.AllPlanets[i] {
			t.Errorf("planet %d = %v, want chart order", i, p.Planet)
		}
		if p.Longitude < 0 || p.Longitude >= 360 {
			t.Errorf("%v longitude %f out of range", p.Planet, p.Longitude)
		}
		if want := organizer.HouseOf(p.Sign, c.Ascendant.Sign); p.House != want {
			t.Errorf("%v house = %d, want %d", p.Planet, p.House, want)
		}
	}
	checkHouses(t, "D1", c.Houses)
	checkHouses(t, "D9", c.Navamsa)
	checkHouses(t, "D10", c.Dasamsa)
	if c.Houses[0].Sign != c.Ascendant.Sign {
		t.Errorf("first house sign %v, ascendant %v", c.Houses[0].Sign, c.Ascendant.Sign)
	}

	moon, _ := c.Position(model.Moon)
	_, _, lord := calculator.NakshatraOf(moon.Longitude)
	if len(c.Dasha) != 9 || c.Dasha[0].Planet != lord {
		t.Fatalf("first mahadasha = %v, want Moon's nakshatra lord %v", c.Dasha[0].Planet, lord)
	}
	if c.Dasha[0].Balance == nil {
		t.Error("first mahadasha carries no balance")
	}
	if got := dasha.Count(c.Dasha); got <= 9 {
		t.Errorf("default depth built only %d periods", got)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, b := Compute(kolkata), Compute(kolkata)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Compute not deterministic (-a +b):\n%s", diff)
	}
	if a.Ascendant.Sign != b.Ascendant.Sign || a.Ascendant.Nakshatra != b.Ascendant.Nakshatra {
		t.Error("ascendant differs between runs")
	}
}

func TestCompute_DashaDepthOption(t *testing.T) {
	c := Compute(kolkata, WithDashaDepth(1))
	for _, p := range c.Dasha {
		if len(p.Children) != 0 {
			t.Fatalf("%v has children at depth 1", p.Planet)
		}
	}
	deep := Compute(kolkata, WithDashaDepth(99))
	var maxLevel model.DashaLevel
	dasha.Walk(deep.Dasha, func(p model.DashaPeriod, _ []model.Planet) bool {
		maxLevel = max(maxLevel, p.Level)
		return true
	})
	if int(maxLevel) != model.MaxDashaDepth {
		t.Errorf("deepest level = %v, want %d", maxLevel, model.MaxDashaDepth)
	}
}

func TestComputeWithPositions_RecomputesLocally(t *testing.T) {
	internal := Compute(kolkata)
	ext := append(ToExternal(internal), model.ExternalPosition{Name: "Uranus", FullDegree: 280})

	got, err := ComputeWithPositions(kolkata, ext, WithSourceName("upstream"))
	if err != nil {
		t.Fatalf("ComputeWithPositions: %v", err)
	}
	if got.Source != "upstream" {
		t.Errorf("source = %q, want upstream", got.Source)
	}
	if diff := cmp.Diff(internal, got, cmpopts.IgnoreFields(model.Chart{}, "Source")); diff != "" {
		t.Errorf("external path diverged from internal (-internal +external):\n%s", diff)
	}
}

func TestComputeWithPositions_DerivesHousesFromSigns(t *testing.T) {
	ext := ToExternal(Compute(kolkata))
	for i := range ext {
		ext[i].House = 0
	}
	c, err := ComputeWithPositions(kolkata, ext)
	if err != nil {
		t.Fatalf("ComputeWithPositions: %v", err)
	}
	checkHouses(t, "D1", c.Houses)
	for _, p := range c.Planets {
		if p.House < 1 || p.House > 12 {
			t.Errorf("%v house %d not derived", p.Planet, p.House)
		}
	}
}

func TestComputeWithPositions_Validation(t *testing.T) {
	full := ToExternal(Compute(kolkata))
	tests := []struct {
		name     string
		mutate   func([]model.ExternalPosition) []model.ExternalPosition
		problems int
	}{
		{"missing ketu", func(e []model.ExternalPosition) []model.ExternalPosition {
			return e[:len(e)-1]
		}, 1},
		{"missing ascendant", func(e []model.ExternalPosition) []model.ExternalPosition {
			return e[1:]
		}, 1},
		{"non-numeric degree", func(e []model.ExternalPosition) []model.ExternalPosition {
			e[2].FullDegree = math.NaN()
			return e
		}, 2},
		{"duplicate planet", func(e []model.ExternalPosition) []model.ExternalPosition {
			return append(e, e[1])
		}, 1},
		{"house out of range", func(e []model.ExternalPosition) []model.ExternalPosition {
			e[3].House = 13
			return e
		}, 2},
		{"empty list", func([]model.ExternalPosition) []model.ExternalPosition {
			return nil
		}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := tt.mutate(append([]model.ExternalPosition(nil), full...))
			c, err := ComputeWithPositions(kolkata, ext)
			if err == nil {
				t.Fatal("expected an error")
			}
			if c != nil {
				t.Error("chart returned alongside error")
			}
			if !errors.Is(err, ErrInvalidPositions) {
				t.Errorf("error %v does not wrap ErrInvalidPositions", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if len(verr.Problems) != tt.problems {
				t.Errorf("got %d problems %q, want %d", len(verr.Problems), verr.Problems, tt.problems)
			}
		})
	}
}

func TestComputeDashaTree(t *testing.T) {
	birth := time.Date(1997, 2, 8, 2, 17, 0, 0, time.UTC)
	tree := ComputeDashaTree("Dhanishta", 3, birth, 2)
	if len(tree) != 9 || tree[0].Planet != model.Mars {
		t.Fatalf("first lord = %v, want Mars", tree[0].Planet)
	}
	if !tree[0].Start.Equal(birth) {
		t.Errorf("first period starts %v, want birth", tree[0].Start)
	}
	if unknown := ComputeDashaTree("Nowhere", 1, birth, 1); unknown[0].Planet != model.Ketu {
		t.Errorf("unknown mansion lord = %v, want Ketu", unknown[0].Planet)
	}
}

func TestClassifyYogas_ApplicableOnly(t *testing.T) {
	for _, f := range ClassifyYogas(Compute(kolkata)) {
		if !f.Applicable {
			t.Errorf("%s surfaced but not applicable", f.Name)
		}
	}
}

func TestChart_JSONRoundTrip(t *testing.T) {
	want := Compute(kolkata, WithDashaDepth(2))
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got model.Chart
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(*want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("chart changed across JSON (-want +got):\n%s", diff)
	}
}
