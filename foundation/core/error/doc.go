// Package error provides the structured error type used across chronos.
//
// Package: error
// Title: chronos Error Handling Framework
// Description: Structured errors with codes, severity, details and stack traces.
//              Codes fall into the two categories the arithmetic engine raises:
//              range errors (a value outside representable or valid bounds) and
//              type errors (missing, conflicting or unknown inputs).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Replaced service codes with the range/type taxonomy
//
// Usage:
//   import mdwerror "github.com/msto63/chronos/foundation/core/error"
//
//   err := mdwerror.New("date outside supported range").
//     WithCode(mdwerror.CodeOutOfBounds).
//     WithDetail("year", 275761)
//
//   if mdwerror.IsRange(err) {
//     // surface as a range error
//   }
package error
