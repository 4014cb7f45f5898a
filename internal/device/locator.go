// Package device resolves the host's current default output device.
package device

import (
	"go.uber.org/zap"

	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/logging"
)

// Locator finds the default output device. The id is resolved fresh on
// every call and never cached.
type Locator struct {
	accessor *coreaudio.Accessor
}

// NewLocator creates a locator over the given host abstraction
func NewLocator(hal coreaudio.HAL) *Locator {
	return &Locator{accessor: coreaudio.NewAccessor(hal)}
}

// Lookup queries the system object for the default output device
func (l *Locator) Lookup() (coreaudio.ObjectID, error) {
	return l.accessor.ObjectID(coreaudio.SystemObject, coreaudio.AddressDefaultOutputDevice())
}

// Resolve looks up the default output device and logs the outcome. On
// failure it returns coreaudio.UnknownObject together with the host error.
func (l *Locator) Resolve() (coreaudio.ObjectID, error) {
	id, err := l.Lookup()
	if err != nil {
		logging.Debug("Error getting default device id",
			zap.Int32("status_code", int32(coreaudio.StatusOf(err))),
			zap.Error(err),
		)
		return coreaudio.UnknownObject, err
	}

	logging.Info("Resolved default output device", zap.Uint32("device_id", uint32(id)))
	return id, nil
}

// DefaultOutputDevice returns the default output device, or
// coreaudio.UnknownObject when the host cannot answer. It never fails;
// callers decide what to do with the sentinel.
func (l *Locator) DefaultOutputDevice() coreaudio.ObjectID {
	id, _ := l.Resolve()
	return id
}
