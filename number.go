package lispy

import "strconv"

// Number represents a signed 64-bit integer value. Lispy has no floating
// point, rational or bignum variants — see spec Non-goals.
type Number int64

// IsAtom always returns true; a number carries only its payload.
func (Number) IsAtom() bool { return true }

// Equal compares two numbers by integer equality.
func (n Number) Equal(other Value) bool {
	on, ok := other.(Number)
	return ok && n == on
}

// String returns the decimal representation.
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }
