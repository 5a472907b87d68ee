// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to log
//              levels when an error is logged with LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity derived from the range/type categories

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid caller input (range and type errors)
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken configuration or environment
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code.Category() {
	case "range", "type":
		return SeverityLow
	case "configuration":
		return SeverityHigh
	}
	if code == CodeInternal {
		return SeverityCritical
	}
	return SeverityMedium
}
