package iso

import (
	"strings"

	"github.com/msto63/chronos/foundation/core/errors"
)

// Overflow selects how out-of-range fields are handled.
type Overflow int

const (
	// Constrain clamps fields to the nearest valid value
	Constrain Overflow = iota
	// Reject fails with a range error
	Reject
)

// String returns the option name
func (o Overflow) String() string {
	if o == Reject {
		return "reject"
	}
	return "constrain"
}

// ParseOverflow parses "constrain" or "reject". The empty string selects
// Constrain.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "constrain":
		return Constrain, nil
	case "reject":
		return Reject, nil
	default:
		return Constrain, errors.InvalidOption(errors.ModuleISO, "overflow", s)
	}
}
