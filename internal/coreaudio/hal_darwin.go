//go:build darwin && cgo

package coreaudio

/*
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
#include <CoreAudio/CoreAudio.h>
#include <stdlib.h>

static OSStatus ballastPropertySize(AudioObjectID object, UInt32 selector, UInt32 scope, UInt32 element, UInt32 *size) {
	AudioObjectPropertyAddress address = { selector, scope, element };
	return AudioObjectGetPropertyDataSize(object, &address, 0, NULL, size);
}

static OSStatus ballastGetProperty(AudioObjectID object, UInt32 selector, UInt32 scope, UInt32 element, UInt32 *size, void *data) {
	AudioObjectPropertyAddress address = { selector, scope, element };
	return AudioObjectGetPropertyData(object, &address, 0, NULL, size, data);
}

static OSStatus ballastSetProperty(AudioObjectID object, UInt32 selector, UInt32 scope, UInt32 element, UInt32 size, const void *data) {
	AudioObjectPropertyAddress address = { selector, scope, element };
	return AudioObjectSetPropertyData(object, &address, 0, NULL, size, data);
}
*/
import "C"
import "unsafe"

// systemHAL calls straight into the CoreAudio AudioObject property API
type systemHAL struct{}

// NewSystemHAL returns the host's CoreAudio property interface
func NewSystemHAL() HAL {
	return systemHAL{}
}

// SystemHALSupported reports whether NewSystemHAL talks to real hardware
func SystemHALSupported() bool {
	return true
}

func (systemHAL) PropertyDataSize(object ObjectID, addr PropertyAddress) (uint32, OSStatus) {
	var size C.UInt32
	status := C.ballastPropertySize(C.AudioObjectID(object), C.UInt32(addr.Selector), C.UInt32(addr.Scope), C.UInt32(addr.Element), &size)
	return uint32(size), OSStatus(status)
}

func (systemHAL) PropertyData(object ObjectID, addr PropertyAddress, size uint32) ([]byte, OSStatus) {
	if size == 0 {
		return nil, StatusBadPropertySize
	}
	buf := make([]byte, size)
	ioSize := C.UInt32(size)
	status := C.ballastGetProperty(C.AudioObjectID(object), C.UInt32(addr.Selector), C.UInt32(addr.Scope), C.UInt32(addr.Element), &ioSize, unsafe.Pointer(&buf[0]))
	if status != 0 {
		return nil, OSStatus(status)
	}
	return buf[:ioSize], StatusNoError
}

func (systemHAL) SetPropertyData(object ObjectID, addr PropertyAddress, data []byte) OSStatus {
	if len(data) == 0 {
		return StatusBadPropertySize
	}
	status := C.ballastSetProperty(C.AudioObjectID(object), C.UInt32(addr.Selector), C.UInt32(addr.Scope), C.UInt32(addr.Element), C.UInt32(len(data)), unsafe.Pointer(&data[0]))
	return OSStatus(status)
}
