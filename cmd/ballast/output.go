package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ballast-audio/ballast/internal/balance"
	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/ui"
)

// Output formats
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// stepRecorder turns controller step events into a progress step list
type stepRecorder struct {
	progress *ui.Progress
}

func newStepRecorder(label string) *stepRecorder {
	return &stepRecorder{progress: ui.NewProgress(label)}
}

// observe implements balance.StepObserver
func (r *stepRecorder) observe(ev balance.StepEvent) {
	n := r.progress.AddStep(stepName(ev))
	r.progress.StartStep(n, "")
	if ev.Err != nil {
		r.progress.FailStep(n, coreaudio.ShortMessage(ev.Err))
		return
	}
	r.progress.CompleteStep(n, stepNote(ev))
}

func stepName(ev balance.StepEvent) string {
	switch ev.Kind {
	case balance.StepChannelCount:
		return "Read channel count"
	case balance.StepChannelVolume:
		return fmt.Sprintf("Read channel %d volume", ev.Channel)
	case balance.StepReadBalance:
		return "Read current balance"
	case balance.StepWriteBalance:
		return "Write balance"
	case balance.StepWriteVolume:
		return "Write main volume"
	case balance.StepRollback:
		return "Restore previous balance"
	default:
		return string(ev.Kind)
	}
}

func stepNote(ev balance.StepEvent) string {
	if ev.Kind == balance.StepChannelCount {
		return fmt.Sprintf("%d", int(ev.Value))
	}
	return fmt.Sprintf("%.3f", ev.Value)
}

// troubleshootingTips splits a coreaudio hint into bullet points
func troubleshootingTips(err error) []string {
	var tips []string
	for _, line := range strings.Split(coreaudio.TroubleshootingHint(err), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		if line == "" || line == "Troubleshooting:" {
			continue
		}
		tips = append(tips, line)
	}
	if !coreaudio.SystemHALSupported() && coreaudio.IsUnsupported(err) {
		tips = append(tips, coreaudio.ErrUnsupportedPlatform.Error()+"; pass --simulate <profile.yaml>")
	}
	return tips
}

// formatVolumes renders channel volumes as "1: 0.800, 2: 0.300"
func formatVolumes(volumes []float32) string {
	parts := make([]string, len(volumes))
	for i, v := range volumes {
		parts[i] = fmt.Sprintf("%d: %.3f", i+1, v)
	}
	return strings.Join(parts, ", ")
}

// deviceLabel renders an object id, naming it when a simulator knows it
func (s *session) deviceLabel(id coreaudio.ObjectID) string {
	if id == coreaudio.UnknownObject {
		return "0 (none)"
	}
	if s.sim != nil {
		if dev := s.sim.Device(id); dev != nil && dev.Name != "" {
			return fmt.Sprintf("%d (%s)", id, dev.Name)
		}
	}
	return fmt.Sprintf("%d", id)
}
