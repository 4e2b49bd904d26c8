package cpu

import "github.com/dmgb/dmgb/internal/types"

const (
	// flagZero is set when the result of an operation is 0.
	flagZero = types.Bit7
	// flagSubtract is set when the last operation was a subtraction.
	flagSubtract = types.Bit6
	// flagHalfCarry is set when an operation carried out of (or
	// borrowed into) bit 3, or bit 11 for 16-bit additions.
	flagHalfCarry = types.Bit5
	// flagCarry is set when an operation carried out of (or borrowed
	// into) bit 7, or bit 15 for 16-bit additions.
	flagCarry = types.Bit4
)

// isFlagSet reports whether the given flag is set in the F register.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&flag == flag
}

// setFlags writes all four flags at once. Every instruction that
// touches the flags goes through here, so the low nibble of F is
// always zero. Flags an instruction leaves unaffected are passed
// back in from their current state.
func (c *CPU) setFlags(z, n, h, carry bool) {
	v := uint8(0)
	if z {
		v |= flagZero
	}
	if n {
		v |= flagSubtract
	}
	if h {
		v |= flagHalfCarry
	}
	if carry {
		v |= flagCarry
	}
	c.F = v
}
