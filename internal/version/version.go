// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - tcell live viewer, redraw rate limiting, YAML configuration
// 0.2.0 - Command-list renderer with pluggable backends, JSON frame export
// 0.1.0 - Initial release: stereographic projector, embedded catalog, TUI chart
