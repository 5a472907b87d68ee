// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the calendar, timezone and
//              duration engine, grouped into range and type categories.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Range/type taxonomy for temporal arithmetic

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Range errors: a value lies outside representable or valid bounds
	CodeRangeError         Code = "RANGE_ERROR"
	CodeOutOfBounds        Code = "OUT_OF_BOUNDS"
	CodeInvalidDate        Code = "INVALID_DATE"
	CodeAmbiguousTime      Code = "AMBIGUOUS_TIME"
	CodeMixedSign          Code = "MIXED_SIGN"
	CodeUnitOverflow       Code = "UNIT_OVERFLOW"
	CodeRelativeToRequired Code = "RELATIVE_TO_REQUIRED"

	// Type errors: required inputs missing, conflicting or unknown
	CodeTypeError         Code = "TYPE_ERROR"
	CodeMissingField      Code = "MISSING_FIELD"
	CodeConflictingFields Code = "CONFLICTING_FIELDS"
	CodeUnknownCalendar   Code = "UNKNOWN_CALENDAR"
	CodeUnknownTimeZone   Code = "UNKNOWN_TIMEZONE"
	CodeInvalidOption     Code = "INVALID_OPTION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeRangeError, CodeOutOfBounds, CodeInvalidDate, CodeAmbiguousTime,
		CodeMixedSign, CodeUnitOverflow, CodeRelativeToRequired,
		CodeTypeError, CodeMissingField, CodeConflictingFields,
		CodeUnknownCalendar, CodeUnknownTimeZone, CodeInvalidOption,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeRangeError, CodeOutOfBounds, CodeInvalidDate, CodeAmbiguousTime,
		CodeMixedSign, CodeUnitOverflow, CodeRelativeToRequired:
		return "range"
	case CodeTypeError, CodeMissingField, CodeConflictingFields,
		CodeUnknownCalendar, CodeUnknownTimeZone, CodeInvalidOption:
		return "type"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
