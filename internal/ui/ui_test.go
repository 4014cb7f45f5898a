package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Balance applied", []Detail{{Key: "Device", Value: "73"}}),
			want:   []string{"SUCCESS", "Balance applied", "Device:", "73"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Write failed", errors.New("boom"), []string{"Check the device"}),
			want:   []string{"FAILED", "Write failed", "Error: boom", "Troubleshooting:", "Check the device"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Partially applied", nil).AddDetail("Balance", "0.300"),
			want:   []string{"WARNING", "Partially applied", "Balance:", "0.300"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestResult_DetailsKeepOrder(t *testing.T) {
	out := NewSuccessResult("done", nil).
		AddDetail("First", "1").
		AddDetail("Second", "2").
		AddDetail("Third", "3").
		SetWidth(80).
		Render()

	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	third := strings.Index(out, "Third")
	if first < 0 || !(first < second && second < third) {
		t.Errorf("details out of order:\n%s", out)
	}
}

func TestProgress_AddStep(t *testing.T) {
	p := NewProgress("Applying balance").SetWidth(80)

	if p.Total() != 0 || p.Percent != 0 {
		t.Fatalf("empty progress: total=%d percent=%v", p.Total(), p.Percent)
	}

	n := p.AddStep("Read channel count")
	if n != 1 {
		t.Errorf("AddStep() = %d, want 1", n)
	}
	p.StartStep(n, "")
	p.CompleteStep(n, "2")

	n = p.AddStep("Write balance")
	p.StartStep(n, "")
	p.FailStep(n, "'nope'")

	if p.Total() != 2 {
		t.Errorf("Total() = %d, want 2", p.Total())
	}
	if p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}
	if p.Current() != 2 {
		t.Errorf("Current() = %d, want 2", p.Current())
	}
	if !p.Failed() {
		t.Error("Failed() = false with a failed step")
	}

	out := p.Render()
	for _, w := range []string{"Applying balance", "[1/2] Read channel count", "(2)", "[2/2] Write balance", FailureMarker, "('nope')"} {
		if !strings.Contains(out, w) {
			t.Errorf("Render() missing %q in:\n%s", w, out)
		}
	}
}

func TestProgress_StepLifecycle(t *testing.T) {
	p := NewProgress("")

	n := p.AddStep("one")
	p.AddStep("two")
	p.AddStep("three")
	if p.Current() != 0 {
		t.Errorf("Current() = %d with only pending steps", p.Current())
	}

	p.StartStep(n, "")
	if p.Current() != 1 || p.Percent != 0 {
		t.Errorf("after start: current=%d percent=%v", p.Current(), p.Percent)
	}

	p.CompleteStep(1, "")
	p.UpdateStep(2, StepSkipped, "")
	if p.Percent < 0.66 || p.Percent > 0.67 {
		t.Errorf("Percent = %v, want 2/3", p.Percent)
	}

	// Out of range is ignored
	p.UpdateStep(7, StepFailed, "")
	if p.Failed() {
		t.Error("out-of-range update changed state")
	}
}

func TestBalanceMeter_Render(t *testing.T) {
	tests := []struct {
		name  string
		value float32
		col   int
	}{
		{"full left", 0, 0},
		{"centered", 0.5, 20},
		{"full right", 1, 39},
		{"out of range clamps", 3, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBalanceMeter(tt.value, "caption").SetWidth(70) // 40 cell bar
			out := m.Render()

			lines := strings.Split(out, "\n")
			if len(lines) != 2 {
				t.Fatalf("Render() = %d lines, want 2:\n%s", len(lines), out)
			}
			if !strings.Contains(lines[0], "L") || !strings.Contains(lines[0], "R") || !strings.Contains(lines[0], "caption") {
				t.Errorf("bar line missing labels: %q", lines[0])
			}
			if got := strings.Index(lines[1], "^"); got != 4+tt.col {
				t.Errorf("caret at column %d, want %d", got, 4+tt.col)
			}
		})
	}
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Set Balance", "ballast balance set 0.3", []Detail{
		{Key: "Device", Value: "73"},
		{Key: "Mode", Value: "lowest-volume"},
	}).SetWidth(80).Render()

	for _, w := range []string{"SET BALANCE", "ballast balance set 0.3", "Device:", "73", "Mode:", "lowest-volume"} {
		if !strings.Contains(out, w) {
			t.Errorf("Render() missing %q in:\n%s", w, out)
		}
	}
}

func TestPrinter_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	if p.Width() != 80 {
		t.Errorf("Width() = %d, want 80", p.Width())
	}

	p.PrintSuccess("Balance applied", []Detail{{Key: "Balance", Value: "0.300"}})
	p.PrintError("Write failed", errors.New("'nope'"), nil)
	p.Println("plain")

	out := buf.String()
	for _, w := range []string{"Balance applied", "0.300", "Write failed", "'nope'", "plain\n"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q in:\n%s", w, out)
		}
	}
}

func TestPrinter_WidthClamped(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{})
	if got := p.SetWidth(10).Width(); got != MinTerminalWidth {
		t.Errorf("SetWidth(10) = %d, want %d", got, MinTerminalWidth)
	}
	if got := p.SetWidth(500).Width(); got != MaxContentWidth {
		t.Errorf("SetWidth(500) = %d, want %d", got, MaxContentWidth)
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true")
	}
}
