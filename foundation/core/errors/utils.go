// File: utils.go
// Title: Error Utilities for chronos
// Description: Shorthand constructors for the range and type errors raised by
//              the engine, plus helpers to read module context back out.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Range/type constructors

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// Range creates a generic range error
func Range(module, operation, format string, args ...interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeRangeError).
		Messagef(format, args...).
		Build()
}

// Type creates a generic type error
func Type(module, operation, format string, args ...interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeTypeError).
		Messagef(format, args...).
		Build()
}

// OutOfRange creates an error for a value outside [min, max]
func OutOfRange(module, operation, field string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeOutOfBounds).
		Messagef("%s %v out of range [%v, %v]", field, value, min, max).
		Detail("field", field).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// InvalidDate creates an error for a calendar date that does not exist
func InvalidDate(module, operation, format string, args ...interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidDate).
		Messagef(format, args...).
		Build()
}

// MissingField creates an error for a required field that was not supplied
func MissingField(module, operation, field string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeMissingField).
		Messagef("missing required field %q", field).
		Detail("field", field).
		Build()
}

// ConflictingFields creates an error for two fields that disagree
func ConflictingFields(module, operation, a, b string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeConflictingFields).
		Messagef("fields %q and %q disagree", a, b).
		Detail("fields", []string{a, b}).
		Build()
}

// InvalidOption creates an error for an unrecognized option value
func InvalidOption(module, option string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("options").
		Code(mdwerror.CodeInvalidOption).
		Messagef("invalid %s: %v", option, value).
		Detail("option", option).
		Detail("value", value).
		Build()
}

// NotFound creates an error for an unknown identifier of the given code
func NotFound(module string, code mdwerror.Code, identifier string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("resolve").
		Code(code).
		Message(fmt.Sprintf("unknown %s id %q", module, identifier)).
		Detail("id", identifier).
		Build()
}

// ExtractModule returns the module recorded on a chronos error
func ExtractModule(err error) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	if module, ok := mdwErr.Details()["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation returns the operation recorded on a chronos error
func ExtractOperation(err error) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	return mdwErr.Operation()
}

// IsModuleOperation reports whether err was raised by module.operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
