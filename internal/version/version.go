// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - YAML config, notification planning, sunrise/sunset annotation
// 0.2.0 - Trajectory overrides, parallel batch evaluation, event log
// 0.1.0 - Initial release: Bermuda visibility verdicts, TUI list, headless modes
