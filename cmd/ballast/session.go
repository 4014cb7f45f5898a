package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ballast-audio/ballast/internal/config"
	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/device"
	"github.com/ballast-audio/ballast/internal/halsim"
	"github.com/ballast-audio/ballast/internal/logging"
	"github.com/ballast-audio/ballast/internal/ui"
)

// session is everything one command invocation talks to
type session struct {
	opts    *options
	cmd     *cobra.Command
	hal     coreaudio.HAL
	sim     *halsim.HAL // Non-nil with --simulate
	store   *config.Store
	printer *ui.Printer
}

// runner is a command body that needs a session
type runner func(s *session, args []string) error

// withSession opens a session around fn. A simulated profile is saved back
// even when fn fails, since earlier writes may already have landed.
func withSession(opts *options, fn runner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := s.close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		return fn(s, args)
	}
}

func openSession(cmd *cobra.Command, opts *options) (*session, error) {
	s := &session{
		opts:    opts,
		cmd:     cmd,
		printer: ui.NewPrinter(cmd.OutOrStdout()),
	}

	if opts.configPath != "" {
		s.store = config.NewStore(opts.configPath)
	} else {
		store, err := config.NewDefaultStore()
		if err != nil {
			return nil, err
		}
		s.store = store
	}

	if opts.simulate == "" {
		s.hal = coreaudio.NewSystemHAL()
		return s, nil
	}

	profile, err := halsim.LoadProfile(opts.simulate)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.Info("Simulator profile not found, starting from defaults",
			zap.String("path", opts.simulate),
		)
		profile = halsim.DefaultProfile()
	case err != nil:
		return nil, err
	}

	s.sim = halsim.NewFromProfile(profile)
	s.hal = s.sim
	return s, nil
}

// close persists the simulated device state
func (s *session) close() error {
	if s.sim == nil {
		return nil
	}
	if err := s.sim.Profile().Save(s.opts.simulate); err != nil {
		return fmt.Errorf("failed to save simulator state: %w", err)
	}
	return nil
}

// device returns the audio object to operate on: --device when given,
// otherwise the current default output device (0 when there is none).
func (s *session) device() coreaudio.ObjectID {
	if s.cmd.Flags().Changed("device") {
		return coreaudio.ObjectID(s.opts.deviceID)
	}
	return device.NewLocator(s.hal).DefaultOutputDevice()
}

// simulated reports whether commands run against a profile
func (s *session) simulated() bool {
	return s.sim != nil
}

// detailed reports whether styled output was requested
func (s *session) detailed() bool {
	return s.opts.format == formatDetailed
}
