package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ballast-audio/ballast/internal/config"
	"github.com/ballast-audio/ballast/internal/ui"
)

func newPrefsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change saved preferences",
		Long: `Read or change preferences saved in the ballast config file.

Known preferences:
  lowest-volume   Clamp the main volume to the quietest channel when
                  changing balance (default: false)`,
	}
	cmd.AddCommand(newPrefsGetCmd(opts), newPrefsSetCmd(opts))
	return cmd
}

func newPrefsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get [name]",
		Short: "Show preferences",
		Example: `  ballast prefs get
  ballast prefs get lowest-volume --format compact`,
		Args: cobra.MaximumNArgs(1),
		RunE: withSession(opts, runPrefsGet),
	}
}

// prefEntry is one preference as shown to the user
type prefEntry struct {
	name  string
	value bool
}

func runPrefsGet(s *session, args []string) error {
	var entries []prefEntry
	if len(args) == 1 {
		info, err := lookupPreference(args[0])
		if err != nil {
			return err
		}
		entries = append(entries, prefEntry{name: args[0], value: s.store.Bool(info.Key)})
	} else {
		registry, err := s.store.Load()
		if err != nil {
			return fmt.Errorf("failed to read preferences: %w", err)
		}
		entries = listPreferences(registry)
	}

	out := s.cmd.OutOrStdout()
	switch s.opts.format {
	case formatJSON:
		values := make(map[string]bool, len(entries))
		for _, e := range entries {
			values[e.name] = e.value
		}
		return writeJSON(out, values)
	case formatCompact:
		for _, e := range entries {
			fmt.Fprintf(out, "%s=%v\n", e.name, e.value)
		}
		return nil
	}

	details := make([]ui.Detail, 0, len(entries)+1)
	for _, e := range entries {
		details = append(details, ui.Detail{Key: e.name, Value: fmt.Sprintf("%v", e.value)})
	}
	details = append(details, ui.Detail{Key: "File", Value: s.store.Path()})
	s.printer.PrintSuccess("Preferences", details)
	return nil
}

// listPreferences returns every known preference under its CLI name,
// followed by any other key stored in the file under its raw name.
func listPreferences(registry *config.Registry) []prefEntry {
	known := make(map[string]bool, len(config.KnownPreferences))
	var entries []prefEntry
	for _, name := range knownPreferenceNames() {
		key := config.KnownPreferences[name].Key
		known[key] = true
		entries = append(entries, prefEntry{name: name, value: registry.Bool(key)})
	}
	for _, key := range registry.Keys() {
		if !known[key] {
			entries = append(entries, prefEntry{name: key, value: registry.Bool(key)})
		}
	}
	return entries
}

func newPrefsSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <on|off>",
		Short: "Change a preference",
		Example: `  ballast prefs set lowest-volume on
  ballast prefs set lowest-volume false`,
		Args: cobra.ExactArgs(2),
		RunE: withSession(opts, runPrefsSet),
	}
}

func runPrefsSet(s *session, args []string) error {
	info, err := lookupPreference(args[0])
	if err != nil {
		return err
	}
	value, err := parseSwitch(args[1])
	if err != nil {
		return err
	}

	if err := s.store.SetBool(info.Key, value); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	out := s.cmd.OutOrStdout()
	switch s.opts.format {
	case formatJSON:
		return writeJSON(out, map[string]bool{args[0]: value})
	case formatCompact:
		_, err := fmt.Fprintf(out, "%s=%v\n", args[0], value)
		return err
	}

	s.printer.PrintSuccess("Preference saved", []ui.Detail{
		{Key: args[0], Value: fmt.Sprintf("%v", value)},
		{Key: "File", Value: s.store.Path()},
	})
	return nil
}

func lookupPreference(name string) (config.PreferenceInfo, error) {
	info, ok := config.KnownPreferences[name]
	if !ok {
		return config.PreferenceInfo{}, fmt.Errorf("unknown preference %q (known: %v)", name, knownPreferenceNames())
	}
	return info, nil
}

func knownPreferenceNames() []string {
	names := make([]string, 0, len(config.KnownPreferences))
	for name := range config.KnownPreferences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
