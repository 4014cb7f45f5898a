package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ballast-audio/ballast/internal/balance"
	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/device"
	"github.com/ballast-audio/ballast/internal/ui"
)

// deviceCmd prints the default output device
func newDeviceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Show the default output device",
		Long: `Resolve the current default output device and print its audio object id.

An id of 0 means no usable device could be resolved.`,
		Example: `  ballast device
  ballast device --format json
  ballast device --simulate ./speakers.yaml`,
		Args: cobra.NoArgs,
		RunE: withSession(opts, runDevice),
	}
}

func runDevice(s *session, args []string) error {
	id, lookupErr := device.NewLocator(s.hal).Resolve()

	out := s.cmd.OutOrStdout()
	switch s.opts.format {
	case formatJSON:
		return writeJSON(out, map[string]any{"device": uint32(id)})
	case formatCompact:
		_, err := fmt.Fprintln(out, uint32(id))
		return err
	}

	if lookupErr != nil {
		r := ui.NewWarningResult("No default output device", []ui.Detail{
			{Key: "Device", Value: s.deviceLabel(id)},
			{Key: "Status", Value: coreaudio.StatusOf(lookupErr).String()},
		})
		r.Troubleshooting = troubleshootingTips(lookupErr)
		s.printer.PrintResult(r)
		return nil
	}

	if id == coreaudio.UnknownObject {
		// The host answered, but nothing is routed to an output
		s.printer.PrintWarning("No default output device", []ui.Detail{
			{Key: "Device", Value: s.deviceLabel(id)},
		})
		return nil
	}

	s.printer.PrintSuccess("Default output device", []ui.Detail{
		{Key: "Device", Value: s.deviceLabel(id)},
	})
	return nil
}

func newBalanceCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Read or change the output balance",
	}
	cmd.AddCommand(newBalanceGetCmd(opts), newBalanceSetCmd(opts))
	return cmd
}

func newBalanceGetCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current balance",
		Long: `Read the balance of the output device.

0.0 is full left, 0.5 centered and 1.0 full right. When the balance cannot
be read, 0.5 is shown; pass --strict to fail instead.`,
		Example: `  ballast balance get
  ballast balance get --format compact
  ballast balance get --strict --device 73`,
		Args: cobra.NoArgs,
		RunE: withSession(opts, func(s *session, args []string) error {
			return runBalanceGet(s, strict)
		}),
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the balance cannot be read instead of showing 0.5")
	return cmd
}

func runBalanceGet(s *session, strict bool) error {
	id := s.device()
	ctrl := balance.NewController(s.hal, s.store, nil)

	var value float32
	if strict {
		v, err := ctrl.DeviceBalance(id)
		if err != nil {
			return s.reportFailure("Could not read balance", err)
		}
		value = v
	} else {
		value = ctrl.GetDeviceBalance(id)
	}

	out := s.cmd.OutOrStdout()
	switch s.opts.format {
	case formatJSON:
		return writeJSON(out, map[string]any{
			"device":   uint32(id),
			"balance":  value,
			"position": balance.Describe(value),
		})
	case formatCompact:
		_, err := fmt.Fprintf(out, "%.3f (%s)\n", value, balance.Describe(value))
		return err
	}

	s.printer.PrintMeter(ui.NewBalanceMeter(value, balance.Describe(value)))
	s.printer.PrintSuccess("Current balance", []ui.Detail{
		{Key: "Device", Value: s.deviceLabel(id)},
		{Key: "Balance", Value: fmt.Sprintf("%.3f", value)},
		{Key: "Position", Value: balance.Describe(value)},
	})
	return nil
}

// setFlags holds the flags of balance set
type setFlags struct {
	verify       bool
	retries      int
	rollback     bool
	lowestVolume string
}

func newBalanceSetCmd(opts *options) *cobra.Command {
	flags := &setFlags{}

	cmd := &cobra.Command{
		Use:   "set <value>",
		Short: "Change the balance",
		Long: `Write a new balance to the output device.

The value is 0.0 (full left) to 1.0 (full right), a percentage such as 30%,
or one of left, center, right.

With lowest volume mode on, ballast first reads every channel's volume,
writes the balance, then sets the main volume to the quietest channel. The
two writes are not atomic: if the volume write fails the new balance stays
applied, unless --rollback is given.`,
		Example: `  # Shift the sound slightly left
  ballast balance set 0.4

  # Center it again
  ballast balance set center

  # Turn on lowest volume mode and apply
  ballast balance set 30% --lowest-volume on

  # Read the value back after writing
  ballast balance set 0.75 --verify --retries 5`,
		Args: cobra.ExactArgs(1),
		RunE: withSession(opts, func(s *session, args []string) error {
			return runBalanceSet(s, args[0], flags)
		}),
	}

	cmd.Flags().BoolVar(&flags.verify, "verify", false, "Read the balance back after writing")
	cmd.Flags().IntVar(&flags.retries, "retries", 3, "Number of verification retries")
	cmd.Flags().BoolVar(&flags.rollback, "rollback", false, "Restore the previous balance if the main volume write fails")
	cmd.Flags().StringVar(&flags.lowestVolume, "lowest-volume", "", "Turn lowest volume mode on or off (saved) before applying")
	return cmd
}

// setReport is the JSON form of a balance write
type setReport struct {
	Device            uint32    `json:"device"`
	Balance           float32   `json:"balance"`
	Mode              string    `json:"mode"`
	ChannelCount      int       `json:"channel_count,omitempty"`
	ChannelVolumes    []float32 `json:"channel_volumes,omitempty"`
	MinVolume         *float32  `json:"min_volume,omitempty"`
	BalanceWritten    bool      `json:"balance_written"`
	VolumeWritten     bool      `json:"volume_written"`
	RollbackAttempted bool      `json:"rollback_attempted,omitempty"`
	RollbackSucceeded bool      `json:"rollback_succeeded,omitempty"`
	Verified          *bool     `json:"verified,omitempty"`
	Status            int32     `json:"status"`
	Error             string    `json:"error,omitempty"`
}

func runBalanceSet(s *session, arg string, flags *setFlags) error {
	value, err := balance.ParseBalance(arg)
	if err != nil {
		return err
	}

	if flags.lowestVolume != "" {
		enabled, err := parseSwitch(flags.lowestVolume)
		if err != nil {
			return fmt.Errorf("--lowest-volume: %w", err)
		}
		if err := s.store.SetLowestVolume(enabled); err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}
	}

	id := s.device()
	steps := newStepRecorder("Applying balance " + balance.Describe(value))
	ctrl := balance.NewController(s.hal, s.store, &balance.Options{
		RollbackOnVolumeFailure: flags.rollback,
		Observer:                steps.observe,
	})

	result, applyErr := ctrl.Apply(id, value)

	var verify *balance.VerifyResult
	if applyErr == nil && flags.verify {
		vopts := balance.DefaultVerifyOptions()
		vopts.MaxRetries = flags.retries
		verify = ctrl.Verify(id, value, vopts)
	}

	if err := s.renderSet(result, applyErr, verify, steps); err != nil {
		return err
	}

	switch {
	case applyErr != nil:
		return &reportedError{err: applyErr}
	case verify != nil && !verify.Success:
		return &reportedError{err: fmt.Errorf("verification failed after %d attempts: %w", verify.Attempts, verify.Error)}
	}
	return nil
}

func (s *session) renderSet(result *balance.SetResult, applyErr error, verify *balance.VerifyResult, steps *stepRecorder) error {
	out := s.cmd.OutOrStdout()

	switch s.opts.format {
	case formatJSON:
		report := setReport{
			Device:            uint32(result.Device),
			Balance:           result.Balance,
			Mode:              result.Mode.String(),
			ChannelCount:      result.ChannelCount,
			ChannelVolumes:    result.ChannelVolumes,
			BalanceWritten:    result.BalanceWritten,
			VolumeWritten:     result.VolumeWritten,
			RollbackAttempted: result.RollbackAttempted,
			RollbackSucceeded: result.RollbackSucceeded,
			Status:            int32(result.Status),
		}
		if result.Mode == balance.ModeLowestVolume {
			minVolume := result.MinVolume
			report.MinVolume = &minVolume
		}
		if verify != nil {
			report.Verified = &verify.Success
		}
		if applyErr != nil {
			report.Error = applyErr.Error()
		}
		return writeJSON(out, report)

	case formatCompact:
		line := fmt.Sprintf("device %d: balance %.3f mode=%s", result.Device, result.Balance, result.Mode)
		if result.VolumeWritten {
			line += fmt.Sprintf(" main-volume=%.3f", result.MinVolume)
		}
		if applyErr != nil {
			line += " error=" + coreaudio.StatusOf(applyErr).String()
		}
		if verify != nil {
			line += fmt.Sprintf(" verified=%v", verify.Success)
		}
		_, err := fmt.Fprintln(out, line)
		return err
	}

	s.printer.PrintHeader("Set Balance", "ballast balance set", []ui.Detail{
		{Key: "Device", Value: s.deviceLabel(result.Device)},
		{Key: "Balance", Value: fmt.Sprintf("%.3f (%s)", result.Balance, balance.Describe(result.Balance))},
		{Key: "Mode", Value: result.Mode.String()},
	})
	if steps.progress.Total() > 0 {
		s.printer.PrintProgress(steps.progress)
	}

	details := []ui.Detail{{Key: "Device", Value: s.deviceLabel(result.Device)}}
	if result.BalanceWritten {
		details = append(details, ui.Detail{Key: "Balance", Value: fmt.Sprintf("%.3f", result.Balance)})
	}
	if len(result.ChannelVolumes) > 0 {
		details = append(details, ui.Detail{Key: "Channels", Value: formatVolumes(result.ChannelVolumes)})
	}
	if result.VolumeWritten {
		details = append(details, ui.Detail{Key: "Main volume", Value: fmt.Sprintf("%.3f", result.MinVolume)})
	} else if result.Mode == balance.ModeLowestVolume && result.BalanceWritten && result.ChannelCount == 0 {
		details = append(details, ui.Detail{Key: "Main volume", Value: "unchanged (no channels)"})
	}

	switch {
	case applyErr != nil && result.PartiallyApplied():
		r := ui.NewWarningResult("Balance applied, main volume not set", details)
		r.Error = applyErr
		r.Troubleshooting = append(troubleshootingTips(applyErr),
			"Pass --rollback to restore the previous balance when this happens")
		s.printer.PrintResult(r)

	case applyErr != nil:
		r := ui.NewFailureResult(coreaudio.ShortMessage(applyErr), applyErr, troubleshootingTips(applyErr))
		if result.RollbackSucceeded {
			r.AddDetail("Rollback", fmt.Sprintf("restored %.3f", result.PreviousBalance))
		} else if result.RollbackError != nil {
			r.AddDetail("Rollback", "failed: "+coreaudio.ShortMessage(result.RollbackError))
		}
		s.printer.PrintResult(r)

	case verify != nil && !verify.Success:
		r := ui.NewFailureResult("Balance did not verify", verify.Error, []string{
			"The driver may quantize balance to coarse steps",
			"Another application may have changed the balance",
		})
		r.Details = append(details, ui.Detail{Key: "Read back", Value: fmt.Sprintf("%.3f", verify.Actual)})
		s.printer.PrintResult(r)

	default:
		if verify != nil {
			details = append(details, ui.Detail{Key: "Verified", Value: fmt.Sprintf("%d attempt(s)", verify.Attempts)})
		}
		s.printer.PrintSuccess("Balance applied", details)
	}
	return nil
}

// reportFailure renders err in the selected format and marks it reported
func (s *session) reportFailure(title string, err error) error {
	switch s.opts.format {
	case formatJSON:
		if jsonErr := writeJSON(s.cmd.OutOrStdout(), map[string]any{
			"error":  err.Error(),
			"status": int32(coreaudio.StatusOf(err)),
		}); jsonErr != nil {
			return jsonErr
		}
	case formatCompact:
		fmt.Fprintf(s.cmd.OutOrStdout(), "error=%s\n", coreaudio.StatusOf(err))
	default:
		s.printer.PrintError(title, err, troubleshootingTips(err))
	}
	return &reportedError{err: err}
}

// parseSwitch accepts on/off as well as the strconv booleans
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}
