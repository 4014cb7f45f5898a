// Package logging provides structured logging for ballast.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used throughout the tool. It is silent by default: nothing is
// written unless a level is chosen with --log-level or BALLAST_LOG_LEVEL.
//
// # Log Levels
//
//   - Debug: every host property call with its status code, fallback decisions
//   - Info: device resolution, balance and volume writes
//   - Warn: degraded results (sentinel device, centered balance fallback)
//   - Error: failures returned to the caller
//
// Diagnostics that only make sense while developing (the status code behind a
// swallowed host failure) are emitted at debug level, so a normal run never
// shows them.
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("Balance written",
//	    zap.Uint32("device_id", 73),
//	    zap.Float32("balance", 0.5),
//	)
//
// Host calls have a dedicated helper:
//
//	logging.LogPropertyCall("get", objectID, addr.String(), status.String(), int32(status))
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
