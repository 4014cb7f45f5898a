package balance

import (
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/logging"
)

// VerifyOptions configures how a written balance is read back
type VerifyOptions struct {
	// MaxRetries is the number of re-reads after the first one
	// Default: 3
	MaxRetries int

	// InitialDelay is waited before the first read, giving the driver time
	// to apply the change
	// Default: 50ms
	InitialDelay time.Duration

	// RetryDelay is the first delay between reads; it doubles per retry
	// Default: 100ms
	RetryDelay time.Duration

	// MaxRetryDelay caps the delay between reads
	// Default: 1s
	MaxRetryDelay time.Duration

	// Tolerance is the largest accepted difference between the expected
	// and the read balance. Drivers quantize balance to their own steps.
	// Default: 0.01
	Tolerance float32
}

// DefaultVerifyOptions returns sensible defaults for verification
func DefaultVerifyOptions() *VerifyOptions {
	return &VerifyOptions{
		MaxRetries:    3,
		InitialDelay:  50 * time.Millisecond,
		RetryDelay:    100 * time.Millisecond,
		MaxRetryDelay: 1 * time.Second,
		Tolerance:     0.01,
	}
}

// VerifyResult contains the outcome of a verification
type VerifyResult struct {
	// Success indicates the device reported the expected balance
	Success bool

	// Attempts is the number of reads made
	Attempts int

	// Expected is the balance that was written
	Expected float32

	// Actual is the last balance read from the device
	Actual float32

	// Error is the last read error or mismatch
	Error error
}

// Verify reads the balance back until it matches expected within the
// tolerance, retrying with exponential backoff.
func (c *Controller) Verify(device coreaudio.ObjectID, expected float32, opts *VerifyOptions) *VerifyResult {
	if opts == nil {
		opts = DefaultVerifyOptions()
	}

	result := &VerifyResult{Expected: expected}

	time.Sleep(opts.InitialDelay)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = opts.RetryDelay
	policy.MaxInterval = opts.MaxRetryDelay
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0
	policy.Reset()

	var schedule backoff.BackOff = &backoff.StopBackOff{}
	if opts.MaxRetries > 0 {
		schedule = backoff.WithMaxRetries(policy, uint64(opts.MaxRetries))
	}

	err := backoff.Retry(func() error {
		result.Attempts++

		actual, err := c.DeviceBalance(device)
		if err != nil {
			return fmt.Errorf("attempt %d: failed to read balance: %w", result.Attempts, err)
		}
		result.Actual = actual

		if diff := math.Abs(float64(actual - expected)); diff > float64(opts.Tolerance) {
			return fmt.Errorf("attempt %d: balance mismatch: expected %.3f, got %.3f", result.Attempts, expected, actual)
		}
		return nil
	}, schedule)

	if err != nil {
		result.Error = fmt.Errorf("verification failed after %d attempts: %w", result.Attempts, err)
		logging.Warn("Balance verification failed",
			zap.Uint32("device_id", uint32(device)),
			zap.Int("attempts", result.Attempts),
			zap.Error(err),
		)
		return result
	}

	result.Success = true
	return result
}
