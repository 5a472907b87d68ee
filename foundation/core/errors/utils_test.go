// File: utils_test.go
// Title: Error Utilities Tests
// Description: Tests for the module-scoped constructors and extractors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package errors

import (
	"fmt"
	"testing"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func TestConstructorsCarryCategory(t *testing.T) {
	testCases := []struct {
		name     string
		err      *mdwerror.Error
		code     mdwerror.Code
		category string
	}{
		{"range", Range(ModuleDayTime, "check", "days %d", 1), mdwerror.CodeRangeError, "range"},
		{"type", Type(ModuleCalendar, "refine", "bad"), mdwerror.CodeTypeError, "type"},
		{"out of range", OutOfRange(ModuleISO, "regulate", "month", 13, 1, 12), mdwerror.CodeOutOfBounds, "range"},
		{"invalid date", InvalidDate(ModuleCalendar, "refine", "no such day"), mdwerror.CodeInvalidDate, "range"},
		{"missing", MissingField(ModuleCalendar, "refine", "day"), mdwerror.CodeMissingField, "type"},
		{"conflict", ConflictingFields(ModuleCalendar, "refine", "month", "monthCode"), mdwerror.CodeConflictingFields, "type"},
		{"option", InvalidOption(ModuleRounding, "roundingMode", "sideways"), mdwerror.CodeInvalidOption, "type"},
		{"not found", NotFound(ModuleTimeZone, mdwerror.CodeUnknownTimeZone, "Mars/Olympus"), mdwerror.CodeUnknownTimeZone, "type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code() != tc.code {
				t.Errorf("Code() = %v, want %v", tc.err.Code(), tc.code)
			}
			if got := tc.err.Code().Category(); got != tc.category {
				t.Errorf("Category() = %q, want %q", got, tc.category)
			}
			if ExtractModule(tc.err) == "" {
				t.Error("module detail missing")
			}
		})
	}
}

func TestOutOfRangeMessage(t *testing.T) {
	err := OutOfRange(ModuleISO, "regulateTime", "hour", 24, 0, 23)
	if got, want := err.Error(), "hour 24 out of range [0, 23]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Details()["field"] != "hour" {
		t.Errorf("field detail = %v", err.Details()["field"])
	}
}

func TestExtractors(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", MissingField(ModuleCalendar, "refine", "day"))

	if got := ExtractModule(err); got != ModuleCalendar {
		t.Errorf("ExtractModule() = %q, want %q", got, ModuleCalendar)
	}
	if got := ExtractOperation(err); got != "refine" {
		t.Errorf("ExtractOperation() = %q, want refine", got)
	}
	if !IsModuleOperation(err, ModuleCalendar, "refine") {
		t.Error("IsModuleOperation() = false")
	}
	if ExtractModule(fmt.Errorf("plain")) != "" {
		t.Error("plain error must have no module")
	}
}

func TestBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleArith).Operation("round").Build()
	if got, want := err.Error(), "arith.round failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := fmt.Errorf("inner")
	wrapped := NewErrorBuilder(ModuleArith).Cause(cause).Message("outer").Code(mdwerror.CodeRangeError).Build()
	if got, want := wrapped.Error(), "outer: inner"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
