package balance

import (
	"go.uber.org/zap"

	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/logging"
)

const (
	// CenteredBalance is reported when a device's balance cannot be read
	CenteredBalance float32 = 0.5

	// initialMinVolume is the ceiling the channel scan starts from
	initialMinVolume float32 = 1.0
)

// PreferenceSource supplies the lowest volume preference. It is consulted
// at the start of every write and never cached by the controller.
type PreferenceSource interface {
	LowestVolume() bool
}

// PreferenceFunc adapts a plain function to PreferenceSource
type PreferenceFunc func() bool

// LowestVolume implements PreferenceSource
func (f PreferenceFunc) LowestVolume() bool {
	return f()
}

// Options tunes how writes are carried out
type Options struct {
	// RollbackOnVolumeFailure restores the previous balance when the main
	// volume write fails after the balance write succeeded.
	// Default: false (the new balance stays applied)
	RollbackOnVolumeFailure bool

	// Observer, if set, receives an event for every step of a write
	Observer StepObserver
}

// Controller implements balance reads and writes for a device
type Controller struct {
	accessor *coreaudio.Accessor
	prefs    PreferenceSource
	opts     Options
}

// NewController creates a controller. A nil prefs behaves as if the lowest
// volume preference were off; nil opts selects the defaults.
func NewController(hal coreaudio.HAL, prefs PreferenceSource, opts *Options) *Controller {
	if prefs == nil {
		prefs = PreferenceFunc(func() bool { return false })
	}
	c := &Controller{
		accessor: coreaudio.NewAccessor(hal),
		prefs:    prefs,
	}
	if opts != nil {
		c.opts = *opts
	}
	return c
}

// DeviceBalance reads the device's balance
func (c *Controller) DeviceBalance(device coreaudio.ObjectID) (float32, error) {
	return c.accessor.Float32(device, coreaudio.AddressVirtualMainBalance())
}

// GetDeviceBalance returns the device's balance, or CenteredBalance when it
// cannot be read. It never fails.
func (c *Controller) GetDeviceBalance(device coreaudio.ObjectID) float32 {
	value, err := c.DeviceBalance(device)
	if err != nil {
		logging.Debug("Error getting default device balance",
			zap.Uint32("device_id", uint32(device)),
			zap.Int32("status_code", int32(coreaudio.StatusOf(err))),
			zap.Error(err),
		)
		return CenteredBalance
	}
	return value
}

// SetDeviceBalance writes a new balance, clamping the main volume to the
// quietest channel first when the lowest volume preference is on. The
// returned error carries the host status (see coreaudio.StatusOf).
func (c *Controller) SetDeviceBalance(device coreaudio.ObjectID, balance float32) error {
	_, err := c.Apply(device, balance)
	return err
}

// Apply performs the same write as SetDeviceBalance and also reports what
// was read and written along the way. The result is never nil.
func (c *Controller) Apply(device coreaudio.ObjectID, balance float32) (*SetResult, error) {
	result := &SetResult{
		Device:  device,
		Balance: balance,
		Mode:    ModeDirect,
	}

	if c.prefs.LowestVolume() {
		result.Mode = ModeLowestVolume
		return result, c.applyLowestVolume(device, balance, result)
	}

	err := c.writeBalance(device, balance, result)
	return result, err
}

func (c *Controller) applyLowestVolume(device coreaudio.ObjectID, balance float32, result *SetResult) error {
	result.MinVolume = initialMinVolume

	count, err := c.accessor.ChannelCount(device)
	c.notify(StepEvent{Kind: StepChannelCount, Value: float32(count), Err: err})
	if err != nil {
		return c.fail(result, err)
	}
	result.ChannelCount = count

	// Channel elements start at 1; element 0 is the main element.
	for ch := 1; ch <= count; ch++ {
		volume, err := c.accessor.Float32(device, coreaudio.AddressChannelVolume(uint32(ch)))
		c.notify(StepEvent{Kind: StepChannelVolume, Channel: ch, Value: volume, Err: err})
		if err != nil {
			return c.fail(result, err)
		}
		result.ChannelVolumes = append(result.ChannelVolumes, volume)
		if volume < result.MinVolume {
			result.MinVolume = volume
		}
	}

	if c.opts.RollbackOnVolumeFailure {
		previous, err := c.DeviceBalance(device)
		c.notify(StepEvent{Kind: StepReadBalance, Value: previous, Err: err})
		if err != nil {
			return c.fail(result, err)
		}
		result.PreviousBalance = previous
		result.HasPrevious = true
	}

	if err := c.writeBalance(device, balance, result); err != nil {
		return err
	}

	if count == 0 {
		// Nothing observed to clamp to
		logging.Warn("Device reports no output channels, main volume left unchanged",
			zap.Uint32("device_id", uint32(device)),
		)
		return nil
	}

	err = c.accessor.SetFloat32(device, coreaudio.AddressVirtualMainVolume(), result.MinVolume)
	c.notify(StepEvent{Kind: StepWriteVolume, Value: result.MinVolume, Err: err})
	if err != nil {
		logging.Error("Main volume write failed after balance was applied",
			zap.Uint32("device_id", uint32(device)),
			zap.Float32("balance", balance),
			zap.Float32("min_volume", result.MinVolume),
			zap.Int32("status_code", int32(coreaudio.StatusOf(err))),
		)
		c.rollback(device, result)
		return c.fail(result, err)
	}

	result.VolumeWritten = true
	logging.Info("Main volume clamped to quietest channel",
		zap.Uint32("device_id", uint32(device)),
		zap.Float32("min_volume", result.MinVolume),
		zap.Int("channels", count),
	)
	return nil
}

func (c *Controller) writeBalance(device coreaudio.ObjectID, balance float32, result *SetResult) error {
	err := c.accessor.SetFloat32(device, coreaudio.AddressVirtualMainBalance(), balance)
	c.notify(StepEvent{Kind: StepWriteBalance, Value: balance, Err: err})
	if err != nil {
		return c.fail(result, err)
	}

	result.BalanceWritten = true
	logging.Info("Balance written",
		zap.Uint32("device_id", uint32(device)),
		zap.Float32("balance", balance),
		zap.String("mode", result.Mode.String()),
	)
	return nil
}

// rollback restores the balance read before the write, when enabled
func (c *Controller) rollback(device coreaudio.ObjectID, result *SetResult) {
	if !c.opts.RollbackOnVolumeFailure || !result.HasPrevious {
		return
	}

	result.RollbackAttempted = true
	err := c.accessor.SetFloat32(device, coreaudio.AddressVirtualMainBalance(), result.PreviousBalance)
	c.notify(StepEvent{Kind: StepRollback, Value: result.PreviousBalance, Err: err})
	if err != nil {
		result.RollbackError = err
		logging.Error("Balance rollback failed",
			zap.Uint32("device_id", uint32(device)),
			zap.Int32("status_code", int32(coreaudio.StatusOf(err))),
		)
		return
	}

	result.RollbackSucceeded = true
	logging.Info("Balance rolled back", zap.Float32("balance", result.PreviousBalance))
}

func (c *Controller) fail(result *SetResult, err error) error {
	result.Status = coreaudio.StatusOf(err)
	return err
}

func (c *Controller) notify(ev StepEvent) {
	if c.opts.Observer != nil {
		c.opts.Observer(ev)
	}
}
