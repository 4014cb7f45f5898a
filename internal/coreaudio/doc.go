// Package coreaudio is the property accessor for the host audio hardware
// abstraction (CoreAudio's AudioObject property API on macOS).
//
// Everything ballast does to a device goes through the three primitive calls
// of the HAL interface: get a property's size, get its value, set its value.
// Each call is addressed by an object id and a PropertyAddress triple
// (selector, scope, element).
//
// # Addresses
//
// Addresses are plain values passed explicitly to every call; there is no
// shared address state. Each one comes from a constructor:
//
//	coreaudio.AddressDefaultOutputDevice() // dOut/glob/0 on the system object
//	coreaudio.AddressVirtualMainBalance()  // vmbl/outp/0 on a device
//	coreaudio.AddressChannelVolume(2)      // volm/outp/2
//
// Channel elements are numbered from 1; element 0 is the main element.
//
// # Errors
//
// A non-success status from the host becomes a *PropertyError carrying the
// operation, object, address and the raw OSStatus. StatusOf recovers the code
// from any error so callers that need the original numeric contract still
// have it.
//
// # Platforms
//
// NewSystemHAL talks to CoreAudio through cgo on darwin. On every other
// platform (or with CGO_ENABLED=0) it returns a HAL that rejects each call
// with StatusUnsupportedOperation.
package coreaudio
