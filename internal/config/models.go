package config

import "sort"

// LowestVolumeKey is the preference that turns on lowest volume mode
const LowestVolumeKey = "lowestVolume"

// currentVersion is the config file format version
const currentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int             `yaml:"version"`
	Preferences map[string]bool `yaml:"preferences,omitempty"` // Keyed by preference name
}

// PreferenceInfo describes a preference the CLI knows about
type PreferenceInfo struct {
	Key         string // Name in the config file
	Description string
}

// KnownPreferences maps CLI names to preferences
var KnownPreferences = map[string]PreferenceInfo{
	"lowest-volume": {
		Key:         LowestVolumeKey,
		Description: "Clamp the main volume to the quietest channel when changing balance",
	},
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     currentVersion,
		Preferences: make(map[string]bool),
	}
}

// Bool returns a preference, false when unset
func (r *Registry) Bool(key string) bool {
	return r.Preferences[key]
}

// SetBool sets a preference
func (r *Registry) SetBool(key string, value bool) {
	if r.Preferences == nil {
		r.Preferences = make(map[string]bool)
	}
	r.Preferences[key] = value
}

// Keys returns the names of all set preferences, sorted
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.Preferences))
	for k := range r.Preferences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
