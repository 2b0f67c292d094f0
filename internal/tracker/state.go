package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"Jyotish/internal/model"
)

// Announcement is the last dasha chain announced for a profile.
type Announcement struct {
	Lineage     []model.Planet `json:"lineage"` // mahadasha first
	Start       time.Time      `json:"start"`   // start of the deepest announced period
	End         time.Time      `json:"end"`
	AnnouncedAt time.Time      `json:"announced_at"`
}

// State is the persisted announcement state, keyed by profile name.
type State struct {
	Profiles  map[string]Announcement `json:"profiles"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// LoadState reads the state from a JSON file. Returns an empty state if the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Profiles: map[string]Announcement{}}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Profiles == nil {
		state.Profiles = map[string]Announcement{}
	}
	return &state, nil
}

// SaveState writes the state to a JSON file, creating its directory if needed.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}
