// Package iso holds the proleptic ISO 8601 calendar math: date and time
// field records, conversion to and from day-time instants, range checks and
// the overflow policy used when regulating user supplied fields.
//
// Dates are converted with closed-form epoch-day formulas over int64, so
// the extreme supported dates -271821-04-19 and +275760-09-13 convert
// exactly without any intermediate shifting.
package iso
