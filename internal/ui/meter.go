package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BalanceMeter draws a stereo balance as a bar running from L to R.
// Value 0.0 is full left, 0.5 centered, 1.0 full right.
type BalanceMeter struct {
	Value   float32
	Caption string // e.g., "20% left"
	Width   int
}

// NewBalanceMeter creates a meter for value
func NewBalanceMeter(value float32, caption string) *BalanceMeter {
	return &BalanceMeter{
		Value:   value,
		Caption: caption,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (m *BalanceMeter) SetWidth(width int) *BalanceMeter {
	m.Width = width
	return m
}

func (m *BalanceMeter) barWidth() int {
	w := m.Width - 30 // Room for the L/R labels and the caption
	if w < 20 {
		w = 20
	}
	if w > 50 {
		w = 50
	}
	return w
}

// position clamps the value into the drawable range
func (m *BalanceMeter) position() float64 {
	v := float64(m.Value)
	if math.IsNaN(v) {
		return 0.5
	}
	return math.Max(0, math.Min(1, v))
}

// Render returns the meter as two lines: the bar and a caret under the
// balance position.
func (m *BalanceMeter) Render() string {
	width := m.barWidth()
	bar := progress.New(
		progress.WithScaledGradient(string(LeftColor), string(RightColor)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	pos := m.position()
	barLine := fmt.Sprintf("  %s %s %s",
		MeterLeftStyle.Render("L"),
		bar.ViewAs(pos),
		MeterRightStyle.Render("R"),
	)
	if m.Caption != "" {
		barLine += "  " + StepNoteStyle.Render(m.Caption)
	}

	// Caret column: "  L " prefix is four cells wide
	col := int(math.Round(pos * float64(width-1)))
	caretLine := strings.Repeat(" ", 4+col) + "^"

	return barLine + "\n" + lipgloss.NewStyle().Foreground(PrimaryColor).Render(caretLine)
}

// String implements fmt.Stringer
func (m *BalanceMeter) String() string {
	return m.Render()
}
