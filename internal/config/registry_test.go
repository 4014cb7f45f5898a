package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "ballast") {
		t.Errorf("GetConfigDir() = %v, should contain 'ballast'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestGetConfigPath_Override(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(ConfigPathEnvVar, want)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("GetConfigPath() = %v, want %v", got, want)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}
	if reg.Bool(LowestVolumeKey) {
		t.Error("lowestVolume should default to false")
	}
}

func TestRegistry_SetBoolAndKeys(t *testing.T) {
	reg := &Registry{Version: 1}

	reg.SetBool("zeta", true)
	reg.SetBool(LowestVolumeKey, true)

	if !reg.Bool(LowestVolumeKey) {
		t.Error("Bool() = false after SetBool(true)")
	}

	keys := reg.Keys()
	if len(keys) != 2 || keys[0] != LowestVolumeKey || keys[1] != "zeta" {
		t.Errorf("Keys() = %v, want [lowestVolume zeta]", keys)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Version != 1 || len(reg.Preferences) != 0 {
		t.Errorf("unexpected registry for missing file: %+v", reg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", "preferences: [", "failed to parse"},
		{"future version", "version: 2\npreferences:\n  lowestVolume: true\n", "unsupported config version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_SaveToAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.SetBool(LowestVolumeKey, true)

	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "lowestVolume: true") {
		t.Errorf("saved file missing preference:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Bool(LowestVolumeKey) {
		t.Error("lowestVolume lost across save/load")
	}
}

func TestStore_ReadsFreshEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := NewStore(path)

	if store.LowestVolume() {
		t.Fatal("LowestVolume() = true with no config file")
	}

	// Another process flips the preference
	if err := os.WriteFile(path, []byte("version: 1\npreferences:\n  lowestVolume: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if !store.LowestVolume() {
		t.Error("LowestVolume() did not pick up the external change")
	}

	if err := store.SetLowestVolume(false); err != nil {
		t.Fatalf("SetLowestVolume() error = %v", err)
	}
	if store.LowestVolume() {
		t.Error("LowestVolume() = true after SetLowestVolume(false)")
	}
}

func TestStore_UnreadableFileIsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences: ["), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if store.LowestVolume() {
		t.Error("LowestVolume() = true for an unparseable file")
	}
	if err := store.SetLowestVolume(true); err == nil {
		t.Error("SetLowestVolume() should refuse to overwrite an unparseable file")
	}
}

func TestNewDefaultStore(t *testing.T) {
	want := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(ConfigPathEnvVar, want)

	store, err := NewDefaultStore()
	if err != nil {
		t.Fatalf("NewDefaultStore() error = %v", err)
	}
	if store.Path() != want {
		t.Errorf("Path() = %v, want %v", store.Path(), want)
	}
}

func TestKnownPreferences(t *testing.T) {
	info, ok := KnownPreferences["lowest-volume"]
	if !ok {
		t.Fatal("lowest-volume missing from KnownPreferences")
	}
	if info.Key != LowestVolumeKey {
		t.Errorf("Key = %q, want %q", info.Key, LowestVolumeKey)
	}
}
