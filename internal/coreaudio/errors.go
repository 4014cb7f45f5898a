package coreaudio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform explains why the system HAL rejects every call on
// builds without CoreAudio
var ErrUnsupportedPlatform = errors.New("the CoreAudio HAL is only available on macOS builds with cgo enabled")

// Op names the primitive host call that failed
type Op string

const (
	OpGetSize Op = "get-size"
	OpGet     Op = "get"
	OpSet     Op = "set"
)

// PropertyError is returned when the host abstraction answers a property
// call with a non-success status.
type PropertyError struct {
	Op      Op              // Primitive call that failed
	Object  ObjectID        // Object the call was addressed to
	Address PropertyAddress // Property the call was addressed to
	Status  OSStatus        // Raw host status code
}

// Error implements the error interface
func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %s on object %d: host status %s", e.Op, e.Address, e.Object, e.Status)
}

// NewPropertyError creates a property error for a failed host call
func NewPropertyError(op Op, object ObjectID, addr PropertyAddress, status OSStatus) *PropertyError {
	return &PropertyError{
		Op:      op,
		Object:  object,
		Address: addr,
		Status:  status,
	}
}

// StatusOf returns the host status carried by err. A nil error is
// StatusNoError; an error that did not come from the host is reported as
// StatusUnspecified.
func StatusOf(err error) OSStatus {
	if err == nil {
		return StatusNoError
	}
	var propErr *PropertyError
	if errors.As(err, &propErr) {
		return propErr.Status
	}
	return StatusUnspecified
}

// IsPropertyError checks if an error came from a host property call
func IsPropertyError(err error) bool {
	var propErr *PropertyError
	return errors.As(err, &propErr)
}

// IsUnsupported checks if the host rejected the call as unsupported,
// which is what every call returns on platforms without CoreAudio.
func IsUnsupported(err error) bool {
	return StatusOf(err) == StatusUnsupportedOperation
}

// TroubleshootingHint returns user-facing advice for an error
func TroubleshootingHint(err error) string {
	var propErr *PropertyError
	if !errors.As(err, &propErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch propErr.Status {
	case StatusUnsupportedOperation:
		return strings.Join([]string{
			"The device does not support this control.",
			"Troubleshooting:",
			"  • Some outputs (HDMI, AirPlay, aggregate devices) have no software balance",
			"  • Choose a different output device in Sound settings",
			"  • On non-macOS hosts use --simulate with a device profile",
		}, "\n")

	case StatusUnknownProperty:
		return strings.Join([]string{
			"The device does not expose " + propErr.Address.Selector.String() + ".",
			"Troubleshooting:",
			"  • Lowest volume mode needs per-channel volume controls",
			"  • Disable it with: ballast prefs set lowest-volume false",
		}, "\n")

	case StatusBadObject, StatusBadDevice:
		return strings.Join([]string{
			"The output device is no longer available.",
			"Troubleshooting:",
			"  • The default device may have changed or been unplugged",
			"  • Run the command again to resolve the current default device",
		}, "\n")

	case StatusIllegalOperation, StatusPermissions:
		return strings.Join([]string{
			"The device refused the change.",
			"Troubleshooting:",
			"  • Another application may have exclusive access (hog mode)",
			"  • Check the value is within 0.0 and 1.0",
		}, "\n")

	case StatusNotRunning:
		return "The audio hardware is not running. Try restarting coreaudiod."

	default:
		return fmt.Sprintf("The audio system returned status %s.", propErr.Status)
	}
}

// ShortMessage returns a concise, user-facing error message
func ShortMessage(err error) string {
	var propErr *PropertyError
	if !errors.As(err, &propErr) {
		return err.Error()
	}

	switch propErr.Status {
	case StatusUnsupportedOperation:
		return "Operation not supported by this device"
	case StatusUnknownProperty:
		return "Device has no " + propErr.Address.Selector.String() + " control"
	case StatusBadObject, StatusBadDevice:
		return "Output device unavailable"
	case StatusIllegalOperation, StatusPermissions:
		return "Device refused the change"
	case StatusNotRunning:
		return "Audio hardware not running"
	default:
		if name := propErr.Status.Name(); name != "" {
			return name
		}
		return "Host error " + propErr.Status.String()
	}
}
