package cpu

// conditionMet evaluates a flag condition against the F register.
// CondNone is always met.
func (c *CPU) conditionMet(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(flagZero)
	case CondZ:
		return c.isFlagSet(flagZero)
	case CondNC:
		return !c.isFlagSet(flagCarry)
	case CondC:
		return c.isFlagSet(flagCarry)
	}
	return true
}

// jumpRelative implements JR. The displacement byte was already
// consumed during decode; a taken jump costs one extra machine
// cycle.
func (c *CPU) jumpRelative(instr Instruction) {
	if !c.conditionMet(instr.Cond) {
		return
	}
	c.PC = uint16(int16(c.PC) + int16(instr.Disp))
	c.s.Tick(4)
}

// jumpAbsolute implements JP a16.
func (c *CPU) jumpAbsolute(instr Instruction) {
	if !c.conditionMet(instr.Cond) {
		return
	}
	c.PC = instr.Imm16
	c.s.Tick(4)
}

// call implements CALL: a taken call spends a machine cycle moving
// SP and then pushes the return address.
func (c *CPU) call(instr Instruction) {
	if !c.conditionMet(instr.Cond) {
		return
	}
	c.s.Tick(4)
	c.pushWord(c.PC)
	c.PC = instr.Imm16
}

// ret implements RET and the return half of RETI. The conditional
// forms spend a machine cycle evaluating the condition before the
// pop, which is why RET cc takes 20 cycles taken but RET only 16.
func (c *CPU) ret(instr Instruction) {
	if instr.Cond != CondNone {
		c.s.Tick(4)
		if !c.conditionMet(instr.Cond) {
			return
		}
	}
	c.PC = c.popWord()
	c.s.Tick(4)
}

// rst pushes the return address and jumps to one of the eight fixed
// vectors.
func (c *CPU) rst(vector uint16) {
	c.s.Tick(4)
	c.pushWord(c.PC)
	c.PC = vector
}
