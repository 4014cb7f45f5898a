package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ballast-audio/ballast/internal/logging"
)

const (
	appName    = "ballast"
	configFile = "config.yaml"

	// ConfigPathEnvVar overrides the configuration file location
	ConfigPathEnvVar = "BALLAST_CONFIG"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/ballast or $HOME/.config/ballast
//   - macOS: $HOME/.config/ballast (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\ballast
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
// BALLAST_CONFIG takes precedence over the platform location.
func GetConfigPath() (string, error) {
	if override := os.Getenv(ConfigPathEnvVar); override != "" {
		return override, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads a registry from path. A missing file yields a new default
// registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// An empty file is a default registry
	if registry.Version == 0 && len(registry.Preferences) == 0 {
		return NewRegistry(), nil
	}

	if registry.Version != currentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, currentVersion)
	}

	if registry.Preferences == nil {
		registry.Preferences = make(map[string]bool)
	}

	return &registry, nil
}

// SaveTo writes the registry to path, creating the directory if needed.
// The write is atomic (temp file + rename).
func (r *Registry) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ballast configuration file
# Preferences are read fresh every time ballast changes the balance.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Store is a preference store backed by the config file. It never caches:
// every read goes to disk.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store for the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore creates a store for the platform config file
func NewDefaultStore() (*Store, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return NewStore(path), nil
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the current registry from disk
func (s *Store) Load() (*Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Load(s.path)
}

// Bool reads one preference from disk. An unreadable file counts as unset.
func (s *Store) Bool(key string) bool {
	registry, err := s.Load()
	if err != nil {
		logging.Warn("Could not read preferences, using defaults",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return false
	}
	return registry.Bool(key)
}

// SetBool updates one preference on disk
func (s *Store) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := Load(s.path)
	if err != nil {
		return err
	}
	registry.SetBool(key, value)
	return registry.SaveTo(s.path)
}

// LowestVolume reports whether lowest volume mode is on
func (s *Store) LowestVolume() bool {
	return s.Bool(LowestVolumeKey)
}

// SetLowestVolume turns lowest volume mode on or off
func (s *Store) SetLowestVolume(enabled bool) error {
	return s.SetBool(LowestVolumeKey, enabled)
}
