package halsim

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ballast-audio/ballast/internal/coreaudio"
)

// Call records one primitive call made against the simulator
type Call struct {
	Op      coreaudio.Op
	Object  coreaudio.ObjectID
	Address coreaudio.PropertyAddress
	Data    []byte             // Written bytes, for set calls
	Status  coreaudio.OSStatus // Status returned to the caller
}

// Float32 decodes the written value of a set call
func (c Call) Float32() float32 {
	if len(c.Data) < 4 {
		return 0
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(c.Data))
}

type faultKey struct {
	op   coreaudio.Op
	addr coreaudio.PropertyAddress
}

// HAL is an in-memory coreaudio.HAL
type HAL struct {
	mu            sync.Mutex
	defaultOutput coreaudio.ObjectID
	devices       map[coreaudio.ObjectID]*Device
	order         []coreaudio.ObjectID
	faults        map[faultKey]coreaudio.OSStatus
	calls         []Call
}

// New creates an empty simulator with no devices
func New() *HAL {
	return &HAL{
		devices: make(map[coreaudio.ObjectID]*Device),
		faults:  make(map[faultKey]coreaudio.OSStatus),
	}
}

// NewFromProfile creates a simulator populated from a profile
func NewFromProfile(p *Profile) *HAL {
	h := New()
	for _, dev := range p.Devices {
		h.AddDevice(dev)
	}
	h.SetDefaultOutput(coreaudio.ObjectID(p.DefaultOutput))
	return h
}

// AddDevice adds (or replaces) a simulated device. The device is copied.
func (h *HAL) AddDevice(dev *Device) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := coreaudio.ObjectID(dev.ID)
	if _, exists := h.devices[id]; !exists {
		h.order = append(h.order, id)
	}
	h.devices[id] = copyDevice(dev)
}

// SetDefaultOutput selects the default output device
func (h *HAL) SetDefaultOutput(id coreaudio.ObjectID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultOutput = id
}

// Device returns a copy of a device's current state, or nil
func (h *HAL) Device(id coreaudio.ObjectID) *Device {
	h.mu.Lock()
	defer h.mu.Unlock()

	dev, ok := h.devices[id]
	if !ok {
		return nil
	}
	return copyDevice(dev)
}

// Profile snapshots the simulator state as a profile
func (h *HAL) Profile() *Profile {
	h.mu.Lock()
	defer h.mu.Unlock()

	p := &Profile{DefaultOutput: uint32(h.defaultOutput)}
	for _, id := range h.order {
		p.Devices = append(p.Devices, copyDevice(h.devices[id]))
	}
	return p
}

// Fail makes every call of op on addr return status, for any object
func (h *HAL) Fail(op coreaudio.Op, addr coreaudio.PropertyAddress, status coreaudio.OSStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.faults[faultKey{op: op, addr: addr}] = status
}

// Calls returns every call made so far, oldest first
func (h *HAL) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]Call, len(h.calls))
	copy(result, h.calls)
	return result
}

// Writes returns the set calls made so far, including rejected ones
func (h *HAL) Writes() []Call {
	var writes []Call
	for _, c := range h.Calls() {
		if c.Op == coreaudio.OpSet {
			writes = append(writes, c)
		}
	}
	return writes
}

// ResetCalls forgets the recorded calls
func (h *HAL) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}

// PropertyDataSize implements coreaudio.HAL
func (h *HAL) PropertyDataSize(object coreaudio.ObjectID, addr coreaudio.PropertyAddress) (uint32, coreaudio.OSStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	size, status := h.sizeLocked(object, addr)
	if fault, ok := h.faults[faultKey{op: coreaudio.OpGetSize, addr: addr}]; ok {
		size, status = 0, fault
	}
	h.record(coreaudio.OpGetSize, object, addr, nil, status)
	return size, status
}

// PropertyData implements coreaudio.HAL
func (h *HAL) PropertyData(object coreaudio.ObjectID, addr coreaudio.PropertyAddress, size uint32) ([]byte, coreaudio.OSStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, status := h.getLocked(object, addr)
	if fault, ok := h.faults[faultKey{op: coreaudio.OpGet, addr: addr}]; ok {
		data, status = nil, fault
	}
	if status.OK() && uint32(len(data)) > size {
		data = data[:size]
	}
	h.record(coreaudio.OpGet, object, addr, nil, status)
	return data, status
}

// SetPropertyData implements coreaudio.HAL
func (h *HAL) SetPropertyData(object coreaudio.ObjectID, addr coreaudio.PropertyAddress, data []byte) coreaudio.OSStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	written := append([]byte(nil), data...)
	if fault, ok := h.faults[faultKey{op: coreaudio.OpSet, addr: addr}]; ok {
		h.record(coreaudio.OpSet, object, addr, written, fault)
		return fault
	}

	status := h.setLocked(object, addr, data)
	h.record(coreaudio.OpSet, object, addr, written, status)
	return status
}

func (h *HAL) sizeLocked(object coreaudio.ObjectID, addr coreaudio.PropertyAddress) (uint32, coreaudio.OSStatus) {
	if object == coreaudio.SystemObject {
		if addr.Selector == coreaudio.SelectorDefaultOutputDevice {
			return 4, coreaudio.StatusNoError
		}
		return 0, coreaudio.StatusUnknownProperty
	}

	dev, ok := h.devices[object]
	if !ok {
		return 0, coreaudio.StatusBadObject
	}

	switch addr.Selector {
	case coreaudio.SelectorPreferredStereoChannels:
		return uint32(len(dev.Channels) * coreaudio.ChannelIndexSize), coreaudio.StatusNoError
	case coreaudio.SelectorVirtualMainBalance:
		if dev.NoBalance {
			return 0, coreaudio.StatusUnknownProperty
		}
		return 4, coreaudio.StatusNoError
	case coreaudio.SelectorVirtualMainVolume:
		return 4, coreaudio.StatusNoError
	case coreaudio.SelectorVolumeScalar:
		if !validChannel(dev, addr.Element) {
			return 0, coreaudio.StatusUnknownProperty
		}
		return 4, coreaudio.StatusNoError
	default:
		return 0, coreaudio.StatusUnknownProperty
	}
}

func (h *HAL) getLocked(object coreaudio.ObjectID, addr coreaudio.PropertyAddress) ([]byte, coreaudio.OSStatus) {
	if object == coreaudio.SystemObject {
		if addr.Selector == coreaudio.SelectorDefaultOutputDevice {
			return encodeUint32(uint32(h.defaultOutput)), coreaudio.StatusNoError
		}
		return nil, coreaudio.StatusUnknownProperty
	}

	dev, ok := h.devices[object]
	if !ok {
		return nil, coreaudio.StatusBadObject
	}

	switch addr.Selector {
	case coreaudio.SelectorPreferredStereoChannels:
		data := make([]byte, 0, len(dev.Channels)*coreaudio.ChannelIndexSize)
		for i := range dev.Channels {
			data = append(data, encodeUint32(uint32(i+1))...)
		}
		return data, coreaudio.StatusNoError
	case coreaudio.SelectorVirtualMainBalance:
		if dev.NoBalance {
			return nil, coreaudio.StatusUnknownProperty
		}
		return encodeFloat32(dev.Balance), coreaudio.StatusNoError
	case coreaudio.SelectorVirtualMainVolume:
		return encodeFloat32(dev.Volume), coreaudio.StatusNoError
	case coreaudio.SelectorVolumeScalar:
		if !validChannel(dev, addr.Element) {
			return nil, coreaudio.StatusUnknownProperty
		}
		return encodeFloat32(dev.Channels[addr.Element-1]), coreaudio.StatusNoError
	default:
		return nil, coreaudio.StatusUnknownProperty
	}
}

func (h *HAL) setLocked(object coreaudio.ObjectID, addr coreaudio.PropertyAddress, data []byte) coreaudio.OSStatus {
	if object == coreaudio.SystemObject {
		return coreaudio.StatusUnsupportedOperation
	}

	dev, ok := h.devices[object]
	if !ok {
		return coreaudio.StatusBadObject
	}

	if len(data) != 4 {
		return coreaudio.StatusBadPropertySize
	}
	value := math.Float32frombits(binary.NativeEndian.Uint32(data))
	if math.IsNaN(float64(value)) || value < 0 || value > 1 {
		return coreaudio.StatusIllegalOperation
	}

	switch addr.Selector {
	case coreaudio.SelectorVirtualMainBalance:
		if dev.NoBalance {
			return coreaudio.StatusUnknownProperty
		}
		dev.Balance = value
	case coreaudio.SelectorVirtualMainVolume:
		dev.Volume = value
	case coreaudio.SelectorVolumeScalar:
		if !validChannel(dev, addr.Element) {
			return coreaudio.StatusUnknownProperty
		}
		dev.Channels[addr.Element-1] = value
	default:
		return coreaudio.StatusUnknownProperty
	}
	return coreaudio.StatusNoError
}

func (h *HAL) record(op coreaudio.Op, object coreaudio.ObjectID, addr coreaudio.PropertyAddress, data []byte, status coreaudio.OSStatus) {
	h.calls = append(h.calls, Call{
		Op:      op,
		Object:  object,
		Address: addr,
		Data:    data,
		Status:  status,
	})
}

// validChannel reports whether element names one of the device's channels.
// Element 0 is the main element, not a channel.
func validChannel(dev *Device, element uint32) bool {
	return element >= 1 && int(element) <= len(dev.Channels)
}

func copyDevice(dev *Device) *Device {
	c := *dev
	c.Channels = append([]float32(nil), dev.Channels...)
	return &c
}

func encodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, v)
	return b
}

func encodeFloat32(v float32) []byte {
	return encodeUint32(math.Float32bits(v))
}
