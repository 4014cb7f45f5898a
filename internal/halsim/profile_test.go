package halsim

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseProfile(t *testing.T) {
	data := []byte(`
default_output: 73
devices:
  - id: 73
    name: Built-in Output
    balance: 0.25
    volume: 0.8
    channels: [0.8, 0.3, 0.6]
  - id: 90
    name: HDMI
    no_balance: true
    channels: [1, 1]
`)

	profile, err := ParseProfile(data)
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}

	if profile.DefaultOutput != 73 {
		t.Errorf("DefaultOutput = %d, want 73", profile.DefaultOutput)
	}
	if len(profile.Devices) != 2 {
		t.Fatalf("len(Devices) = %d, want 2", len(profile.Devices))
	}

	dev := profile.Devices[0]
	if dev.Name != "Built-in Output" || dev.Balance != 0.25 || dev.Volume != 0.8 {
		t.Errorf("unexpected device: %+v", dev)
	}
	if len(dev.Channels) != 3 || dev.Channels[1] != 0.3 {
		t.Errorf("Channels = %v, want [0.8 0.3 0.6]", dev.Channels)
	}
	if !profile.Devices[1].NoBalance {
		t.Error("HDMI device should have no_balance set")
	}
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed yaml", "devices: [", "failed to parse"},
		{"reserved id zero", "devices:\n  - id: 0\n", "reserved"},
		{"reserved system id", "devices:\n  - id: 1\n", "reserved"},
		{"duplicate id", "devices:\n  - id: 5\n  - id: 5\n", "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestProfile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")

	original := DefaultProfile()
	original.Devices[0].Balance = 0.1

	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	if loaded.DefaultOutput != original.DefaultOutput {
		t.Errorf("DefaultOutput = %d, want %d", loaded.DefaultOutput, original.DefaultOutput)
	}
	if loaded.Devices[0].Balance != 0.1 {
		t.Errorf("Balance = %v, want 0.1", loaded.Devices[0].Balance)
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing profile")
	}
}
