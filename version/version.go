// Package version holds the tool version. It is stamped into the CLI's
// --version output and into the banner of every generated artifact.
package version

// Version is set at build time via -ldflags for release builds.
var Version = "0.2.0-dev"
