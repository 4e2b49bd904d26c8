package cpu

// add adds value (plus the carry flag, for ADC) to the accumulator.
// The half-carry flag reports a carry out of bit 3, the carry flag a
// carry out of bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	carryIn := uint8(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}

	sum := uint16(c.A) + uint16(value) + uint16(carryIn)
	c.setFlags(uint8(sum) == 0, false, c.A&0xF+value&0xF+carryIn > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// subtract subtracts value (plus the carry flag, for SBC) from the
// accumulator. The half-carry flag reports a borrow into bit 3, the
// carry flag a borrow into bit 7.
func (c *CPU) subtract(value uint8, withCarry bool) {
	carryIn := uint8(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}

	diff := uint16(c.A) - uint16(value) - uint16(carryIn)
	c.setFlags(uint8(diff) == 0, true, c.A&0xF < value&0xF+carryIn, diff > 0xFF)
	c.A = uint8(diff)
}

// compare performs a subtraction for flags only; the accumulator is
// unchanged.
func (c *CPU) compare(value uint8) {
	c.setFlags(c.A == value, true, c.A&0xF < value&0xF, c.A < value)
}

func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// increment returns value+1. INC leaves the carry flag alone, which
// is what lets a 16-bit software increment work with an 8-bit ALU.
func (c *CPU) increment(value uint8) uint8 {
	value++
	c.setFlags(value == 0, false, value&0xF == 0, c.isFlagSet(flagCarry))
	return value
}

// decrement returns value-1, leaving the carry flag alone like INC.
func (c *CPU) decrement(value uint8) uint8 {
	value--
	c.setFlags(value == 0, true, value&0xF == 0xF, c.isFlagSet(flagCarry))
	return value
}

// addHL adds a 16-bit value to HL. The zero flag is untouched; the
// half-carry and carry flags report crossings of bit 11 and bit 15.
// The add takes one machine cycle beyond the fetch.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(flagZero), false, hl&0xFFF+value&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
	c.s.Tick(4)
}

// addSPSigned returns SP plus a signed displacement. The flags come
// from unsigned byte arithmetic on the low byte of SP, zero and
// subtract always clear.
func (c *CPU) addSPSigned(disp int8) uint16 {
	d := uint8(disp)
	c.setFlags(false, false, c.SP&0xF+uint16(d&0xF) > 0xF, c.SP&0xFF+uint16(d) > 0xFF)
	return c.SP + uint16(int16(disp))
}

// decimalAdjust implements DAA: it corrects the accumulator after a
// BCD addition or subtraction, using the subtract, half-carry and
// carry flags to decide which nibbles need the +6/-6 adjustment.
func (c *CPU) decimalAdjust() {
	a := c.A
	adjust := uint8(0)
	carry := c.isFlagSet(flagCarry)

	if c.isFlagSet(flagHalfCarry) || !c.isFlagSet(flagSubtract) && a&0xF > 0x9 {
		adjust |= 0x06
	}
	if carry || !c.isFlagSet(flagSubtract) && a > 0x99 {
		adjust |= 0x60
		carry = true
	}

	if c.isFlagSet(flagSubtract) {
		a -= adjust
	} else {
		a += adjust
	}

	c.setFlags(a == 0, c.isFlagSet(flagSubtract), false, carry)
	c.A = a
}
