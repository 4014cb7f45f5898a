package coreaudio

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOSStatus_String(t *testing.T) {
	tests := []struct {
		status OSStatus
		want   string
	}{
		{StatusNoError, "noErr"},
		{StatusUnknownProperty, "'who?' (2003332927)"},
		{StatusUnsupportedOperation, "'unop' (1970171760)"},
		{OSStatus(-50), "-50"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("OSStatus(%d).String() = %q, want %q", int32(tt.status), got, tt.want)
		}
	}
}

func TestOSStatus_Name(t *testing.T) {
	if StatusBadObject.Name() != "kAudioHardwareBadObjectError" {
		t.Errorf("Name() = %q", StatusBadObject.Name())
	}
	if OSStatus(-50).Name() != "" {
		t.Error("unknown status should have no name")
	}
}

func TestStatusOf(t *testing.T) {
	propErr := NewPropertyError(OpSet, 73, AddressVirtualMainBalance(), StatusIllegalOperation)

	tests := []struct {
		name string
		err  error
		want OSStatus
	}{
		{"nil", nil, StatusNoError},
		{"property error", propErr, StatusIllegalOperation},
		{"wrapped property error", fmt.Errorf("set balance: %w", propErr), StatusIllegalOperation},
		{"foreign error", errors.New("boom"), StatusUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyError_Error(t *testing.T) {
	err := NewPropertyError(OpGet, 73, AddressChannelVolume(2), StatusUnknownProperty)

	msg := err.Error()
	for _, want := range []string{"get", "volm/outp/2", "object 73", "who?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}

func TestPredicates(t *testing.T) {
	unsupported := NewPropertyError(OpGet, 73, AddressVirtualMainBalance(), StatusUnsupportedOperation)

	if !IsPropertyError(unsupported) {
		t.Error("IsPropertyError() = false for *PropertyError")
	}
	if IsPropertyError(errors.New("other")) {
		t.Error("IsPropertyError() = true for foreign error")
	}
	if !IsUnsupported(unsupported) {
		t.Error("IsUnsupported() = false for unop status")
	}
}

func TestTroubleshootingHint(t *testing.T) {
	tests := []struct {
		status OSStatus
		want   string
	}{
		{StatusUnsupportedOperation, "does not support"},
		{StatusUnknownProperty, "does not expose"},
		{StatusBadObject, "no longer available"},
		{StatusPermissions, "refused"},
		{StatusNotRunning, "not running"},
		{OSStatus(-50), "returned status"},
	}

	for _, tt := range tests {
		err := NewPropertyError(OpSet, 73, AddressVirtualMainBalance(), tt.status)
		if hint := TroubleshootingHint(err); !strings.Contains(hint, tt.want) {
			t.Errorf("TroubleshootingHint(%v) = %q, want it to contain %q", tt.status, hint, tt.want)
		}
	}

	if hint := TroubleshootingHint(errors.New("x")); !strings.Contains(hint, "unexpected") {
		t.Errorf("hint for foreign error = %q", hint)
	}
}

func TestShortMessage(t *testing.T) {
	err := NewPropertyError(OpGet, 73, AddressChannelVolume(1), StatusUnknownProperty)
	if got := ShortMessage(err); got != "Device has no volm control" {
		t.Errorf("ShortMessage() = %q", got)
	}

	err = NewPropertyError(OpGet, 73, AddressChannelVolume(1), StatusBadPropertySize)
	if got := ShortMessage(err); got != "kAudioHardwareBadPropertySizeError" {
		t.Errorf("ShortMessage() = %q", got)
	}

	if got := ShortMessage(errors.New("plain")); got != "plain" {
		t.Errorf("ShortMessage() = %q, want plain", got)
	}
}
