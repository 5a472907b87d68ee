// ============================================================================
// chronos - Calendar, Time Zone and Duration Arithmetic
// ============================================================================
//
// Package:     version
// Description: Central version management for the engine and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "runtime"

// Version constants
const (
	// Engine is the version of the pkg/temporal packages
	Engine = "1.0.0"

	// CLI is the version of cmd/chronos
	CLI = "1.0.0"
)

// Overridden at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// Info is the structured version report printed by `chronos version`
type Info struct {
	Engine    string `json:"engine" yaml:"engine"`
	CLI       string `json:"cli" yaml:"cli"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns the version report
func Get() Info {
	return Info{
		Engine:    Engine,
		CLI:       CLI,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "chronos":
		return CLI
	default:
		return Engine
	}
}
