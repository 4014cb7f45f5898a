package halsim

import (
	"testing"

	"github.com/ballast-audio/ballast/internal/coreaudio"
)

func newTestHAL() *HAL {
	return NewFromProfile(&Profile{
		DefaultOutput: 73,
		Devices: []*Device{
			{ID: 73, Balance: 0.5, Volume: 0.8, Channels: []float32{0.8, 0.3, 0.6}},
		},
	})
}

func TestHAL_DefaultOutput(t *testing.T) {
	sim := newTestHAL()
	acc := coreaudio.NewAccessor(sim)

	id, err := acc.ObjectID(coreaudio.SystemObject, coreaudio.AddressDefaultOutputDevice())
	if err != nil {
		t.Fatalf("ObjectID() error = %v", err)
	}
	if id != 73 {
		t.Errorf("default output = %d, want 73", id)
	}
}

func TestHAL_ChannelElements(t *testing.T) {
	sim := newTestHAL()

	tests := []struct {
		element uint32
		want    coreaudio.OSStatus
	}{
		{0, coreaudio.StatusUnknownProperty},
		{1, coreaudio.StatusNoError},
		{3, coreaudio.StatusNoError},
		{4, coreaudio.StatusUnknownProperty},
	}

	for _, tt := range tests {
		_, status := sim.PropertyData(73, coreaudio.AddressChannelVolume(tt.element), 4)
		if status != tt.want {
			t.Errorf("element %d: status = %v, want %v", tt.element, status, tt.want)
		}
	}
}

func TestHAL_PreferredStereoChannelsSize(t *testing.T) {
	sim := newTestHAL()

	size, status := sim.PropertyDataSize(73, coreaudio.AddressPreferredStereoChannels())
	if !status.OK() {
		t.Fatalf("status = %v", status)
	}
	if size != 12 {
		t.Errorf("size = %d, want 12", size)
	}
}

func TestHAL_SetRejectsOutOfRange(t *testing.T) {
	sim := newTestHAL()
	acc := coreaudio.NewAccessor(sim)

	err := acc.SetFloat32(73, coreaudio.AddressVirtualMainBalance(), 1.5)
	if coreaudio.StatusOf(err) != coreaudio.StatusIllegalOperation {
		t.Errorf("status = %v, want %v", coreaudio.StatusOf(err), coreaudio.StatusIllegalOperation)
	}
	if got := sim.Device(73).Balance; got != 0.5 {
		t.Errorf("balance changed to %v after rejected write", got)
	}
}

func TestHAL_UnknownObject(t *testing.T) {
	sim := newTestHAL()

	_, status := sim.PropertyData(99, coreaudio.AddressVirtualMainBalance(), 4)
	if status != coreaudio.StatusBadObject {
		t.Errorf("status = %v, want %v", status, coreaudio.StatusBadObject)
	}
}

func TestHAL_FaultInjection(t *testing.T) {
	sim := newTestHAL()
	sim.Fail(coreaudio.OpSet, coreaudio.AddressVirtualMainVolume(), coreaudio.StatusIllegalOperation)

	acc := coreaudio.NewAccessor(sim)
	err := acc.SetFloat32(73, coreaudio.AddressVirtualMainVolume(), 0.2)
	if coreaudio.StatusOf(err) != coreaudio.StatusIllegalOperation {
		t.Fatalf("status = %v, want injected fault", coreaudio.StatusOf(err))
	}
	if got := sim.Device(73).Volume; got != 0.8 {
		t.Errorf("volume = %v, want unchanged 0.8", got)
	}

	writes := sim.Writes()
	if len(writes) != 1 {
		t.Fatalf("expected 1 recorded write, got %d", len(writes))
	}
	if writes[0].Float32() != 0.2 {
		t.Errorf("recorded value = %v, want 0.2", writes[0].Float32())
	}

	// Other properties are unaffected
	if err := acc.SetFloat32(73, coreaudio.AddressVirtualMainBalance(), 0.2); err != nil {
		t.Fatalf("balance write error = %v", err)
	}
}

func TestHAL_ProfileSnapshot(t *testing.T) {
	sim := newTestHAL()
	acc := coreaudio.NewAccessor(sim)

	if err := acc.SetFloat32(73, coreaudio.AddressVirtualMainBalance(), 0.9); err != nil {
		t.Fatalf("SetFloat32() error = %v", err)
	}

	profile := sim.Profile()
	if profile.Devices[0].Balance != 0.9 {
		t.Errorf("snapshot balance = %v, want 0.9", profile.Devices[0].Balance)
	}

	// Snapshots are copies
	profile.Devices[0].Channels[0] = 0
	if sim.Device(73).Channels[0] != 0.8 {
		t.Error("modifying a snapshot changed simulator state")
	}
}
