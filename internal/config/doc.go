// Package config provides persisted user preferences for ballast.
//
// Preferences live in a small YAML file keyed by name:
//
//	version: 1
//	preferences:
//	  lowestVolume: true
//
// A missing file, or a missing key, means false.
//
// # Configuration File Location
//
// The file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ballast/config.yaml or $HOME/.config/ballast/config.yaml
//   - macOS: $HOME/.config/ballast/config.yaml
//   - Windows: %LOCALAPPDATA%\ballast\config.yaml
//
// BALLAST_CONFIG overrides the location entirely.
//
// # Usage Example
//
//	store, err := config.NewDefaultStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read fresh from disk on every call
//	if store.LowestVolume() {
//	    ...
//	}
//
//	// Saved atomically (temp file + rename)
//	if err := store.SetLowestVolume(true); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Store serializes its own file operations with a mutex. Nothing is cached
// between calls, so changes made by another process are seen on the next read.
package config
