package cpu

import "github.com/dmgb/dmgb/internal/types"

// rotateA implements the four accumulator rotates (RLCA, RRCA, RLA,
// RRA). Unlike their CB-prefixed forms they always clear the zero
// flag.
func (c *CPU) rotateA(op Operation) {
	var result uint8
	var carry bool

	switch op {
	case OpRlca:
		carry = c.A&types.Bit7 != 0
		result = c.A<<1 | c.A>>7
	case OpRrca:
		carry = c.A&types.Bit0 != 0
		result = c.A>>1 | c.A<<7
	case OpRla:
		carry = c.A&types.Bit7 != 0
		result = c.A << 1
		if c.isFlagSet(flagCarry) {
			result |= types.Bit0
		}
	case OpRra:
		carry = c.A&types.Bit0 != 0
		result = c.A >> 1
		if c.isFlagSet(flagCarry) {
			result |= types.Bit7
		}
	}

	c.setFlags(false, false, false, carry)
	c.A = result
}

// shift implements the CB-prefixed rotate and shift family. The
// carry flag receives the bit shifted out, except for SWAP which
// clears it; the zero flag is computed from the result.
func (c *CPU) shift(op Operation, value uint8) uint8 {
	var result uint8
	var carry bool

	switch op {
	case OpRlc:
		carry = value&types.Bit7 != 0
		result = value<<1 | value>>7
	case OpRrc:
		carry = value&types.Bit0 != 0
		result = value>>1 | value<<7
	case OpRl:
		carry = value&types.Bit7 != 0
		result = value << 1
		if c.isFlagSet(flagCarry) {
			result |= types.Bit0
		}
	case OpRr:
		carry = value&types.Bit0 != 0
		result = value >> 1
		if c.isFlagSet(flagCarry) {
			result |= types.Bit7
		}
	case OpSla:
		carry = value&types.Bit7 != 0
		result = value << 1
	case OpSra:
		// arithmetic shift keeps the sign bit
		carry = value&types.Bit0 != 0
		result = value&types.Bit7 | value>>1
	case OpSwap:
		result = value<<4 | value>>4
	case OpSrl:
		carry = value&types.Bit0 != 0
		result = value >> 1
	}

	c.setFlags(result == 0, false, false, carry)
	return result
}

// bit implements BIT: the zero flag is set when the tested bit is
// clear, and the value is never written back.
func (c *CPU) bit(index, value uint8) {
	c.setFlags(value&(1<<index) == 0, false, true, c.isFlagSet(flagCarry))
}
