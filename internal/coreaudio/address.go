package coreaudio

import "fmt"

// FourCC is a four character code as used by CoreAudio for selectors,
// scopes and many status codes.
type FourCC uint32

// String renders the code as its four characters when all of them are
// printable ASCII, and as hex otherwise.
func (c FourCC) String() string {
	b := []byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
	for _, ch := range b {
		if ch < 0x20 || ch > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(c))
		}
	}
	return string(b)
}

// ObjectID identifies an object (system, device, stream) in the host
// abstraction. It is never owned or cached by ballast.
type ObjectID uint32

const (
	// UnknownObject is the sentinel id meaning "no usable object".
	UnknownObject ObjectID = 0
	// SystemObject is the id of the audio hardware system object.
	SystemObject ObjectID = 1
)

// Selectors
const (
	SelectorDefaultOutputDevice     FourCC = 'd'<<24 | 'O'<<16 | 'u'<<8 | 't'
	SelectorVirtualMainBalance      FourCC = 'v'<<24 | 'm'<<16 | 'b'<<8 | 'l'
	SelectorVirtualMainVolume       FourCC = 'v'<<24 | 'm'<<16 | 'v'<<8 | 'c'
	SelectorPreferredStereoChannels FourCC = 'd'<<24 | 'c'<<16 | 'h'<<8 | '2'
	SelectorVolumeScalar            FourCC = 'v'<<24 | 'o'<<16 | 'l'<<8 | 'm'
)

// Scopes
const (
	ScopeGlobal FourCC = 'g'<<24 | 'l'<<16 | 'o'<<8 | 'b'
	ScopeOutput FourCC = 'o'<<24 | 'u'<<16 | 't'<<8 | 'p'
)

// ElementMain addresses the object as a whole rather than one channel.
const ElementMain uint32 = 0

// ChannelIndexSize is the byte size of one channel index in channel list
// properties such as the preferred stereo channels.
const ChannelIndexSize = 4

// PropertyAddress identifies one attribute of an object.
type PropertyAddress struct {
	Selector FourCC
	Scope    FourCC
	Element  uint32
}

// String formats the address as selector/scope/element, e.g. "volm/outp/2".
func (a PropertyAddress) String() string {
	return fmt.Sprintf("%s/%s/%d", a.Selector, a.Scope, a.Element)
}

// AddressDefaultOutputDevice returns the address queried on SystemObject to
// find the current default output device.
func AddressDefaultOutputDevice() PropertyAddress {
	return PropertyAddress{
		Selector: SelectorDefaultOutputDevice,
		Scope:    ScopeGlobal,
		Element:  ElementMain,
	}
}

// AddressVirtualMainBalance returns the address of the device's left/right
// balance (0 = full left, 0.5 = centered, 1 = full right).
func AddressVirtualMainBalance() PropertyAddress {
	return PropertyAddress{
		Selector: SelectorVirtualMainBalance,
		Scope:    ScopeOutput,
		Element:  ElementMain,
	}
}

// AddressPreferredStereoChannels returns the address of the device's
// preferred stereo channel list. Its size divided by ChannelIndexSize is the
// channel count.
func AddressPreferredStereoChannels() PropertyAddress {
	return PropertyAddress{
		Selector: SelectorPreferredStereoChannels,
		Scope:    ScopeOutput,
		Element:  ElementMain,
	}
}

// AddressChannelVolume returns the address of one output channel's volume
// scalar. Channels are numbered from 1.
func AddressChannelVolume(channel uint32) PropertyAddress {
	return PropertyAddress{
		Selector: SelectorVolumeScalar,
		Scope:    ScopeOutput,
		Element:  channel,
	}
}

// AddressVirtualMainVolume returns the address of the device's overall
// output volume.
func AddressVirtualMainVolume() PropertyAddress {
	return PropertyAddress{
		Selector: SelectorVirtualMainVolume,
		Scope:    ScopeOutput,
		Element:  ElementMain,
	}
}
