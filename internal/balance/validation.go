package balance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBalanceOutOfRange is returned for values outside [0.0, 1.0]
var ErrBalanceOutOfRange = errors.New("balance must be between 0.0 (left) and 1.0 (right)")

// ValidateBalance checks a balance value. The controller itself does not
// enforce the range; the host may reject out-of-range values on its own.
func ValidateBalance(value float32) error {
	if math.IsNaN(float64(value)) || value < 0 || value > 1 {
		return fmt.Errorf("%w: got %v", ErrBalanceOutOfRange, value)
	}
	return nil
}

// ParseBalance parses a balance argument. Besides decimal values it accepts
// the names "left", "center" (or "centre") and "right", and percentages
// such as "30%".
func ParseBalance(s string) (float32, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "left", "l":
		return 0, nil
	case "center", "centre", "c":
		return CenteredBalance, nil
	case "right", "r":
		return 1, nil
	}

	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 100
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid balance %q: %w", s, err)
	}

	value := float32(v / scale)
	if err := ValidateBalance(value); err != nil {
		return 0, err
	}
	return value, nil
}

// Describe renders a balance as a short human-readable position, such as
// "centered" or "30% left".
func Describe(value float32) string {
	offset := float64(value - CenteredBalance)
	if math.Abs(offset) < 0.005 {
		return "centered"
	}
	percent := math.Round(math.Abs(offset) * 200)
	if offset < 0 {
		return fmt.Sprintf("%.0f%% left", percent)
	}
	return fmt.Sprintf("%.0f%% right", percent)
}
