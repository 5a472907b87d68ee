package daytime

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns the non-negative remainder matching FloorDiv.
func FloorMod[T constraints.Signed](a, b T) T {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Abs returns |v|. The most negative value is returned unchanged.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// MulAdd returns a*b+c and whether the result fits an int64.
func MulAdd(a, b, c int64) (int64, bool) {
	if a != 0 && b != 0 {
		if a > 0 && b > 0 && a > math.MaxInt64/b ||
			a > 0 && b < 0 && b < math.MinInt64/a ||
			a < 0 && b > 0 && a < math.MinInt64/b ||
			a < 0 && b < 0 && a < math.MaxInt64/b {
			return 0, false
		}
	}
	p := a * b
	s := p + c
	if c > 0 && s < p || c < 0 && s > p {
		return 0, false
	}
	return s, true
}
