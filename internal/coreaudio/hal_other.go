//go:build !darwin || !cgo

package coreaudio

// unsupportedHAL answers every call with StatusUnsupportedOperation
type unsupportedHAL struct{}

// NewSystemHAL returns a HAL that rejects every call on this platform
func NewSystemHAL() HAL {
	return unsupportedHAL{}
}

// SystemHALSupported reports whether NewSystemHAL talks to real hardware
func SystemHALSupported() bool {
	return false
}

func (unsupportedHAL) PropertyDataSize(ObjectID, PropertyAddress) (uint32, OSStatus) {
	return 0, StatusUnsupportedOperation
}

func (unsupportedHAL) PropertyData(ObjectID, PropertyAddress, uint32) ([]byte, OSStatus) {
	return nil, StatusUnsupportedOperation
}

func (unsupportedHAL) SetPropertyData(ObjectID, PropertyAddress, []byte) OSStatus {
	return StatusUnsupportedOperation
}
