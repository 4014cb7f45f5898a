package halsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Device is one simulated output device
type Device struct {
	ID       uint32    `yaml:"id"`
	Name     string    `yaml:"name,omitempty"`
	Balance  float32   `yaml:"balance"`
	Volume   float32   `yaml:"volume"`
	Channels []float32 `yaml:"channels"`

	// NoBalance removes the balance control, as on HDMI or AirPlay outputs
	NoBalance bool `yaml:"no_balance,omitempty"`
}

// Profile is the YAML description of a simulated audio system
type Profile struct {
	DefaultOutput uint32    `yaml:"default_output"`
	Devices       []*Device `yaml:"devices"`
}

// DefaultProfile returns a system with one stereo output device
func DefaultProfile() *Profile {
	return &Profile{
		DefaultOutput: 73,
		Devices: []*Device{
			{
				ID:       73,
				Name:     "Simulated Speakers",
				Balance:  0.5,
				Volume:   0.75,
				Channels: []float32{0.75, 0.75},
			},
		},
	}
}

// ParseProfile decodes a YAML profile
func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse simulator profile: %w", err)
	}

	seen := make(map[uint32]bool)
	for i, dev := range profile.Devices {
		if dev == nil {
			return nil, fmt.Errorf("device %d: empty entry", i)
		}
		if dev.ID == 0 || dev.ID == 1 {
			return nil, fmt.Errorf("device %d: id %d is reserved", i, dev.ID)
		}
		if seen[dev.ID] {
			return nil, fmt.Errorf("device %d: duplicate id %d", i, dev.ID)
		}
		seen[dev.ID] = true
	}

	return &profile, nil
}

// LoadProfile reads a YAML profile from disk
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulator profile: %w", err)
	}
	return ParseProfile(data)
}

// Save writes the profile to disk, replacing the file atomically
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal simulator profile: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write simulator profile: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save simulator profile: %w", err)
	}
	return nil
}
