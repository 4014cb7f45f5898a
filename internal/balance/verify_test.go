package balance

import (
	"strings"
	"testing"
	"time"

	"github.com/ballast-audio/ballast/internal/coreaudio"
)

func fastVerify(retries int) *VerifyOptions {
	return &VerifyOptions{
		MaxRetries:    retries,
		InitialDelay:  0,
		RetryDelay:    time.Millisecond,
		MaxRetryDelay: 2 * time.Millisecond,
		Tolerance:     0.01,
	}
}

func TestVerify_Success(t *testing.T) {
	sim := newSim(1, 1)
	ctrl := NewController(sim, nil, nil)

	if err := ctrl.SetDeviceBalance(testDevice, 0.3); err != nil {
		t.Fatalf("SetDeviceBalance() error = %v", err)
	}

	result := ctrl.Verify(testDevice, 0.3, fastVerify(3))
	if !result.Success {
		t.Fatalf("Verify() failed: %v", result.Error)
	}
	if result.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", result.Attempts)
	}
	if result.Actual != 0.3 {
		t.Errorf("Actual = %v, want 0.3", result.Actual)
	}
}

func TestVerify_WithinTolerance(t *testing.T) {
	sim := newSim(1, 1)
	ctrl := NewController(sim, nil, nil)

	if err := ctrl.SetDeviceBalance(testDevice, 0.305); err != nil {
		t.Fatalf("SetDeviceBalance() error = %v", err)
	}

	if result := ctrl.Verify(testDevice, 0.3, fastVerify(0)); !result.Success {
		t.Errorf("Verify() failed within tolerance: %v", result.Error)
	}
}

func TestVerify_MismatchExhaustsRetries(t *testing.T) {
	sim := newSim(1, 1)
	ctrl := NewController(sim, nil, nil)

	result := ctrl.Verify(testDevice, 0.9, fastVerify(2))
	if result.Success {
		t.Fatal("Verify() succeeded on a mismatching device")
	}
	if result.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3 (1 + 2 retries)", result.Attempts)
	}
	if !strings.Contains(result.Error.Error(), "mismatch") {
		t.Errorf("Error = %v, want a mismatch", result.Error)
	}
}

func TestVerify_ReadFailure(t *testing.T) {
	sim := newSim(1, 1)
	sim.Fail(coreaudio.OpGet, coreaudio.AddressVirtualMainBalance(), coreaudio.StatusNotRunning)
	ctrl := NewController(sim, nil, nil)

	result := ctrl.Verify(testDevice, 0.5, fastVerify(1))
	if result.Success {
		t.Fatal("Verify() succeeded although reads fail")
	}
	if coreaudio.StatusOf(result.Error) != coreaudio.StatusNotRunning {
		t.Errorf("status = %v, want %v", coreaudio.StatusOf(result.Error), coreaudio.StatusNotRunning)
	}
}

func TestDefaultVerifyOptions(t *testing.T) {
	opts := DefaultVerifyOptions()
	if opts.MaxRetries != 3 || opts.Tolerance != 0.01 {
		t.Errorf("unexpected defaults %+v", opts)
	}
}
