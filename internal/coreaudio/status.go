package coreaudio

import "fmt"

// OSStatus is a status code returned by the host abstraction. Zero is
// success; anything else is a failure.
type OSStatus int32

// Status codes reported by the CoreAudio HAL
const (
	StatusNoError              OSStatus = 0
	StatusNotRunning           OSStatus = 's'<<24 | 't'<<16 | 'o'<<8 | 'p'
	StatusUnspecified          OSStatus = 'w'<<24 | 'h'<<16 | 'a'<<8 | 't'
	StatusUnknownProperty      OSStatus = 'w'<<24 | 'h'<<16 | 'o'<<8 | '?'
	StatusBadPropertySize      OSStatus = '!'<<24 | 's'<<16 | 'i'<<8 | 'z'
	StatusIllegalOperation     OSStatus = 'n'<<24 | 'o'<<16 | 'p'<<8 | 'e'
	StatusBadObject            OSStatus = '!'<<24 | 'o'<<16 | 'b'<<8 | 'j'
	StatusBadDevice            OSStatus = '!'<<24 | 'd'<<16 | 'e'<<8 | 'v'
	StatusBadStream            OSStatus = '!'<<24 | 's'<<16 | 't'<<8 | 'r'
	StatusUnsupportedOperation OSStatus = 'u'<<24 | 'n'<<16 | 'o'<<8 | 'p'
	StatusPermissions          OSStatus = '!'<<24 | 'h'<<16 | 'o'<<8 | 'g'
)

// OK reports whether the status is success.
func (s OSStatus) OK() bool {
	return s == StatusNoError
}

// Name returns the CoreAudio constant name for known codes.
func (s OSStatus) Name() string {
	switch s {
	case StatusNoError:
		return "kAudioHardwareNoError"
	case StatusNotRunning:
		return "kAudioHardwareNotRunningError"
	case StatusUnspecified:
		return "kAudioHardwareUnspecifiedError"
	case StatusUnknownProperty:
		return "kAudioHardwareUnknownPropertyError"
	case StatusBadPropertySize:
		return "kAudioHardwareBadPropertySizeError"
	case StatusIllegalOperation:
		return "kAudioHardwareIllegalOperationError"
	case StatusBadObject:
		return "kAudioHardwareBadObjectError"
	case StatusBadDevice:
		return "kAudioHardwareBadDeviceError"
	case StatusBadStream:
		return "kAudioHardwareBadStreamError"
	case StatusUnsupportedOperation:
		return "kAudioHardwareUnsupportedOperationError"
	case StatusPermissions:
		return "kAudioDevicePermissionsError"
	default:
		return ""
	}
}

// String renders the status as its four character code when printable
// (e.g. 'who?'), otherwise as a signed decimal.
func (s OSStatus) String() string {
	if s == StatusNoError {
		return "noErr"
	}
	code := FourCC(uint32(s)).String()
	if len(code) == 4 {
		return fmt.Sprintf("'%s' (%d)", code, int32(s))
	}
	return fmt.Sprintf("%d", int32(s))
}
