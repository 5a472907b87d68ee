// Package log provides structured logging for the chronos engine and CLI.
//
// Package: log
// Title: chronos Structured Logging
// Description: Leveled, field-based logging with JSON, text and logfmt output.
//              Engine packages accept an optional *Logger and emit debug
//              entries on cache fills and slow operations; the CLI attaches a
//              correlation id per invocation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Trimmed to engine needs, correlation id only, synchronous writes
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithName("calendar")
//
//	logger.Debug("year data computed", log.Fields{"calendar": "hebrew", "year": 5785})
//
//	timer := logger.StartTimer("diff")
//	defer timer.Stop()
package log
