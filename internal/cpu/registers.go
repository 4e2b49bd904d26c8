package cpu

// Register is an 8-bit register of the CPU.
type Register = uint8

// Registers contains the 8-bit registers of the CPU, along with the
// 16-bit register pairs viewing them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// RegisterPair is a 16-bit view over two 8-bit registers. A non-zero
// mask is applied on every 16-bit write; the AF pair uses it to keep
// the low nibble of F clear.
type RegisterPair struct {
	High *Register
	Low  *Register

	mask uint16
}

// Uint16 returns the current 16-bit value of the pair.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the 16-bit value of the pair, applying the pair's
// write mask.
func (r *RegisterPair) SetUint16(value uint16) {
	if r.mask != 0 {
		value &= r.mask
	}
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// createPairs wires up the 16-bit register pairs. The AF pair masks
// its low nibble so the unused flag bits can never be set, not even
// by POP AF.
func (c *CPU) createPairs() {
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F, mask: 0xFFF0}

	// indexed by the cyclical operand encoding; index 6 is the (HL)
	// memory operand and has no backing register
	c.registerPointers = [8]*Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
}
