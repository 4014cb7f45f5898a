package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	full := Full()
	if !strings.Contains(full, Version) || !strings.Contains(full, "commit: "+Commit) {
		t.Errorf("Full() = %q", full)
	}
	if Version == "" || Commit == "" {
		t.Error("init should populate Version and Commit")
	}
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		native bool
		want   string
	}{
		{true, "audio: CoreAudio"},
		{false, "audio: simulated only"},
	}

	for _, tt := range tests {
		got := Platform(tt.native)
		if !strings.Contains(got, tt.want) || !strings.Contains(got, runtime.GOOS) {
			t.Errorf("Platform(%v) = %q", tt.native, got)
		}
	}
}
