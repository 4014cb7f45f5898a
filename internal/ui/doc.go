// Package ui provides terminal output components for the ballast CLI.
//
// The components use Lipgloss for styling and Bubble Tea for a "run once and
// exit" render. Nothing here reads input; ballast has no interactive screens.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Progress: progress bar with the list of host steps a write performed
//   - Result: success, failure or warning box with details and tips
//   - BalanceMeter: left/right bar showing where the balance sits
//
// # Usage Pattern
//
// Commands build components and hand them to a Printer:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Set Balance", "ballast balance set 0.3", []ui.Detail{
//	    {Key: "Device", Value: "73"},
//	})
//	p.PrintProgress(progress)
//	p.PrintSuccess("Balance applied", details)
//
// # Logging Integration
//
// zap logging is silent unless BALLAST_LOG_LEVEL (or --log-level) selects a
// level, so the curated output here is not interleaved with log lines.
package ui
