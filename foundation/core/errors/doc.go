// Package errors provides the module-scoped error constructors used by every
// chronos engine package.
//
// Package: errors
// Title: Standard Error Handling API for chronos
// Description: Builds *mdwerror.Error values with module and operation
//              details attached, so that callers can classify failures as
//              range or type errors without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: Engine modules and range/type constructors
//
// Usage:
//
//	return errors.OutOfRange(errors.ModuleISO, "regulateDate", month, 1, 12)
//
//	return errors.NewErrorBuilder(errors.ModuleCalendar).
//		Operation("refine").
//		Code(mdwerror.CodeConflictingFields).
//		Messagef("month %d does not match monthCode %s", month, code).
//		Build()
package errors
