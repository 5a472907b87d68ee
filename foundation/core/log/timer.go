// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on Stop.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-17 v0.2.0: Single Stop/StopWithError pair

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the elapsed time at debug level. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs the elapsed time together with err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	level, message := LevelDebug, t.operation+" completed"
	if err != nil {
		level, message = LevelError, t.operation+" failed"
	}
	if !t.logger.IsLevelEnabled(level) {
		return elapsed
	}

	entry := NewEntry(level, message)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Error = err
	entry.Duration = elapsed
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	entry.Fields["operation"] = t.operation
	t.logger.write(entry)
	return elapsed
}
