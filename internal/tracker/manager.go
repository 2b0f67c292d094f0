// Package tracker remembers which dasha period was last announced per profile so
// the watcher only reports real transitions.
package tracker

import (
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"Jyotish/internal/model"
)

// Manager guards the announcement state and persists every change.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

func key(profile string) string { return strings.ToLower(strings.TrimSpace(profile)) }

func lineageOf(chain []model.DashaPeriod) []model.Planet {
	out := make([]model.Planet, len(chain))
	for i, p := range chain {
		out[i] = p.Planet
	}
	return out
}

// Last returns the last announcement for a profile.
func (m *Manager) Last(profile string) (Announcement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.state.Profiles[key(profile)]
	return a, ok
}

// Changed reports whether the active chain differs from the last one announced.
// A profile with no history counts as changed.
func (m *Manager) Changed(profile string, chain []model.DashaPeriod) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.state.Profiles[key(profile)]
	if !ok {
		return true
	}
	return !slices.Equal(a.Lineage, lineageOf(chain))
}

// Mark records chain as announced for the profile.
func (m *Manager) Mark(profile string, chain []model.DashaPeriod, at time.Time) {
	if len(chain) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	deepest := chain[len(chain)-1]
	m.state.Profiles[key(profile)] = Announcement{
		Lineage:     lineageOf(chain),
		Start:       deepest.Start,
		End:         deepest.End,
		AnnouncedAt: at,
	}
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save tracker state: %v", err)
	}
}

// Prune drops history for profiles no longer configured and returns how many were removed.
func (m *Manager) Prune(keep []string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := make(map[string]bool, len(keep))
	for _, name := range keep {
		live[key(name)] = true
	}
	removed := 0
	for name := range m.state.Profiles {
		if !live[name] {
			delete(m.state.Profiles, name)
			removed++
		}
	}
	if removed > 0 {
		if err := m.save(); err != nil {
			log.Printf("[ERROR] failed to save tracker state after prune: %v", err)
		}
	}
	return removed
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
