package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"Jyotish/internal/model"
)

func chain(planets ...model.Planet) []model.DashaPeriod {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.DashaPeriod, len(planets))
	for i, p := range planets {
		out[i] = model.DashaPeriod{
			Planet: p,
			Level:  model.DashaLevel(i + 1),
			Start:  start,
			End:    start.AddDate(1, 0, 0),
		}
	}
	return out
}

func TestManager_ChangedAndMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	current := chain(model.Mars, model.Rahu)
	if !m.Changed("Asha", current) {
		t.Error("fresh profile should count as changed")
	}
	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	m.Mark("Asha", current, now)
	if m.Changed("asha", current) {
		t.Error("same chain reported as changed after Mark")
	}
	if !m.Changed("Asha", chain(model.Mars, model.Jupiter)) {
		t.Error("new antardasha not reported")
	}

	last, ok := m.Last("ASHA")
	if !ok || !last.AnnouncedAt.Equal(now) || len(last.Lineage) != 2 {
		t.Errorf("Last = %+v, %v", last, ok)
	}
}

func TestManager_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	m.Mark("Dev", chain(model.Venus, model.Sun, model.Moon), time.Now())

	reopened, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Changed("Dev", chain(model.Venus, model.Sun, model.Moon)) {
		t.Error("state lost across restart")
	}
}

func TestManager_Prune(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	m.Mark("Asha", chain(model.Mars), time.Now())
	m.Mark("Dev", chain(model.Venus), time.Now())

	if got := m.Prune([]string{"asha"}); got != 1 {
		t.Errorf("Prune removed %d, want 1", got)
	}
	if _, ok := m.Last("Dev"); ok {
		t.Error("Dev survived prune")
	}
	if _, ok := m.Last("Asha"); !ok {
		t.Error("Asha pruned")
	}
}

func TestManager_MarkIgnoresEmptyChain(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	m.Mark("Asha", nil, time.Now())
	if _, ok := m.Last("Asha"); ok {
		t.Error("empty chain recorded")
	}
}
