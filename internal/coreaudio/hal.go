package coreaudio

import (
	"encoding/binary"
	"math"

	"github.com/ballast-audio/ballast/internal/logging"
)

// HAL is the boundary to the host audio hardware abstraction. The three
// calls mirror AudioObjectGetPropertyDataSize, AudioObjectGetPropertyData and
// AudioObjectSetPropertyData. Values travel as native-endian bytes.
type HAL interface {
	// PropertyDataSize returns the byte size of the property's current value.
	PropertyDataSize(object ObjectID, addr PropertyAddress) (uint32, OSStatus)

	// PropertyData reads up to size bytes of the property's current value.
	PropertyData(object ObjectID, addr PropertyAddress, size uint32) ([]byte, OSStatus)

	// SetPropertyData writes a new value for the property.
	SetPropertyData(object ObjectID, addr PropertyAddress, data []byte) OSStatus
}

// Accessor performs typed property reads and writes over a HAL. Every host
// failure is returned as a *PropertyError.
type Accessor struct {
	hal HAL
}

// NewAccessor creates an accessor over the given host abstraction
func NewAccessor(hal HAL) *Accessor {
	return &Accessor{hal: hal}
}

// HAL returns the underlying host abstraction
func (a *Accessor) HAL() HAL {
	return a.hal
}

// Size returns the byte size of the property's current value
func (a *Accessor) Size(object ObjectID, addr PropertyAddress) (uint32, error) {
	size, status := a.hal.PropertyDataSize(object, addr)
	logCall(OpGetSize, object, addr, status)
	if !status.OK() {
		return 0, NewPropertyError(OpGetSize, object, addr, status)
	}
	return size, nil
}

// Float32 reads a Float32 property such as a balance or volume scalar
func (a *Accessor) Float32(object ObjectID, addr PropertyAddress) (float32, error) {
	bits, err := a.read32(object, addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// Uint32 reads a UInt32 property
func (a *Accessor) Uint32(object ObjectID, addr PropertyAddress) (uint32, error) {
	return a.read32(object, addr)
}

// ObjectID reads a property whose value is an AudioObjectID
func (a *Accessor) ObjectID(object ObjectID, addr PropertyAddress) (ObjectID, error) {
	v, err := a.read32(object, addr)
	if err != nil {
		return UnknownObject, err
	}
	return ObjectID(v), nil
}

// SetFloat32 writes a Float32 property
func (a *Accessor) SetFloat32(object ObjectID, addr PropertyAddress, value float32) error {
	data := make([]byte, 4)
	binary.NativeEndian.PutUint32(data, math.Float32bits(value))

	status := a.hal.SetPropertyData(object, addr, data)
	logCall(OpSet, object, addr, status)
	if !status.OK() {
		return NewPropertyError(OpSet, object, addr, status)
	}
	return nil
}

// ChannelCount returns the number of output channels of a device, derived
// from the size of its preferred stereo channel list.
func (a *Accessor) ChannelCount(object ObjectID) (int, error) {
	size, err := a.Size(object, AddressPreferredStereoChannels())
	if err != nil {
		return 0, err
	}
	return int(size) / ChannelIndexSize, nil
}

// read32 reads a 4 byte property value
func (a *Accessor) read32(object ObjectID, addr PropertyAddress) (uint32, error) {
	data, status := a.hal.PropertyData(object, addr, 4)
	if status.OK() && len(data) < 4 {
		// The host answered with less than a full value
		status = StatusBadPropertySize
	}
	logCall(OpGet, object, addr, status)
	if !status.OK() {
		return 0, NewPropertyError(OpGet, object, addr, status)
	}
	return binary.NativeEndian.Uint32(data), nil
}

func logCall(op Op, object ObjectID, addr PropertyAddress, status OSStatus) {
	logging.LogPropertyCall(string(op), uint32(object), addr.String(), status.String(), int32(status))
}
