// Ballast controls the stereo balance of the default audio output device.
//
// It reads and writes the balance of whatever device macOS currently routes
// sound to, and can optionally clamp the main volume to the quietest channel
// when the balance changes ("lowest volume mode").
//
// Usage:
//
//	ballast [command] [flags]
//
// On hosts without CoreAudio, pass --simulate <profile.yaml> to run every
// command against a simulated device profile.
// See 'ballast --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ballast-audio/ballast/internal/config"
	"github.com/ballast-audio/ballast/internal/coreaudio"
	"github.com/ballast-audio/ballast/internal/logging"
	"github.com/ballast-audio/ballast/internal/version"
)

// Exit codes
const (
	exitFailure     = 1 // Usage and local errors
	exitHostFailure = 2 // The audio system rejected a property call
	exitUnsupported = 3 // No native audio HAL on this host
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case coreaudio.IsUnsupported(err):
		return exitUnsupported
	case coreaudio.IsPropertyError(err):
		return exitHostFailure
	default:
		return exitFailure
	}
}

// reportedError marks an error the command already rendered, so main only
// sets the exit status.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// options holds the persistent flags
type options struct {
	logLevel   string
	format     string
	deviceID   uint32
	simulate   string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ballast",
		Short: "Default output device balance control",
		Long: `Read and change the stereo balance of the default audio output device.

With lowest volume mode on, every balance change also sets the main volume
to the quietest channel's volume, so shifting the balance never makes the
louder side louder.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.logLevel != "" {
				err = logging.Initialize(opts.logLevel)
			} else {
				err = logging.InitializeFromEnv()
			}
			if err != nil {
				return err
			}
			switch opts.format {
			case formatDetailed, formatCompact, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (use detailed, compact or json)", opts.format)
			}
		},
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	flags.StringVar(&opts.format, "format", formatDetailed, "Output format (detailed, compact, json)")
	flags.Uint32Var(&opts.deviceID, "device", 0, "Audio object id to use instead of the default output device")
	flags.StringVar(&opts.simulate, "simulate", "", "Run against a simulated device profile (YAML), created if missing")
	flags.StringVar(&opts.configPath, "config", "", "Preferences file; defaults to $"+config.ConfigPathEnvVar)

	rootCmd.AddCommand(
		newDeviceCmd(opts),
		newBalanceCmd(opts),
		newPrefsCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ballast %s\n", version.Full())
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", version.Platform(coreaudio.SystemHALSupported()))
		},
	}
}
