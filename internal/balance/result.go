package balance

import "github.com/ballast-audio/ballast/internal/coreaudio"

// Mode is the write strategy chosen from the preference
type Mode int

const (
	// ModeDirect writes the balance and nothing else
	ModeDirect Mode = iota
	// ModeLowestVolume clamps the main volume to the quietest channel
	ModeLowestVolume
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeLowestVolume:
		return "lowest-volume"
	default:
		return "unknown"
	}
}

// StepKind identifies one host interaction of a write
type StepKind string

const (
	// StepChannelCount reads the preferred stereo channel list size
	StepChannelCount StepKind = "channel-count"
	// StepChannelVolume reads one channel's volume scalar
	StepChannelVolume StepKind = "channel-volume"
	// StepReadBalance reads the balance before a rollback-enabled write
	StepReadBalance StepKind = "read-balance"
	// StepWriteBalance writes the virtual main balance
	StepWriteBalance StepKind = "write-balance"
	// StepWriteVolume writes the virtual main volume
	StepWriteVolume StepKind = "write-volume"
	// StepRollback restores the balance after a failed volume write
	StepRollback StepKind = "rollback"
)

// StepEvent reports one completed (or failed) step
type StepEvent struct {
	Kind    StepKind
	Channel int     // Channel element, for StepChannelVolume
	Value   float32 // Value read or written
	Err     error   // Non-nil when the step failed
}

// StepObserver receives step events as a write progresses
type StepObserver func(StepEvent)

// SetResult describes what a write read and changed
type SetResult struct {
	Device  coreaudio.ObjectID
	Balance float32
	Mode    Mode

	// Lowest volume mode only
	ChannelCount   int
	ChannelVolumes []float32 // Index i holds channel i+1
	MinVolume      float32

	// Rollback support
	PreviousBalance float32
	HasPrevious     bool

	BalanceWritten    bool
	VolumeWritten     bool
	RollbackAttempted bool
	RollbackSucceeded bool
	RollbackError     error

	// Status is the host status of the failing step, StatusNoError on success
	Status coreaudio.OSStatus
}

// Success reports whether every step succeeded
func (r *SetResult) Success() bool {
	return r.Status.OK()
}

// PartiallyApplied reports whether the new balance is on the device even
// though the write as a whole failed.
func (r *SetResult) PartiallyApplied() bool {
	return !r.Success() && r.BalanceWritten && !r.RollbackSucceeded
}
