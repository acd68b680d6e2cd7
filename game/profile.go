package game

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Profile is the locally persisted client state: the saved credential and a
// cached XP snapshot for rendering guest progress while offline.
type Profile struct {
	Token string `json:"token,omitempty"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
}

// LoadProfile reads the saved profile. A missing file yields a zero profile
// with no error.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// SaveProfile writes the profile, creating parent directories as needed.
// The file holds a credential, so permissions are owner-only.
func SaveProfile(path string, p Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
