package cpu

import "github.com/dmgb/dmgb/internal/types"

// execute runs a decoded instruction. Immediates were consumed
// during decode; any remaining bus traffic (memory operands, stack
// accesses) and internal delay cycles happen here, in hardware
// order.
func (c *CPU) execute(instr Instruction) {
	switch instr.Op {
	case OpNop:
	case OpStop:
		c.mode = ModeStop
		c.PC++ // the byte after STOP is skipped
		c.b.Write(types.DIV, 0)
	case OpHalt:
		switch {
		case c.irq.IME:
			c.mode = ModeHalt
		case c.irq.HasPending():
			// IME clear with a pending interrupt triggers the halt
			// bug: the next opcode byte is executed twice
			c.mode = ModeHaltBug
		default:
			c.mode = ModeHaltDI
		}

	case OpLoad:
		c.writeOperand(instr.Dst, c.sourceValue(instr))
	case OpLoadPairImm:
		if instr.Pair == PairSP {
			c.SP = instr.Imm16
		} else {
			c.pair(instr.Pair).SetUint16(instr.Imm16)
		}
	case OpStoreSP:
		c.b.ClockedWrite(instr.Imm16, uint8(c.SP))
		c.b.ClockedWrite(instr.Imm16+1, uint8(c.SP>>8))
	case OpStoreAInd:
		c.b.ClockedWrite(c.indirectAddress(instr.Pair), c.A)
	case OpLoadAInd:
		c.A = c.b.ClockedRead(c.indirectAddress(instr.Pair))
	case OpStoreAHigh:
		c.b.ClockedWrite(0xFF00+uint16(instr.Imm), c.A)
	case OpLoadAHigh:
		c.A = c.b.ClockedRead(0xFF00 + uint16(instr.Imm))
	case OpStoreAC:
		c.b.ClockedWrite(0xFF00+uint16(c.C), c.A)
	case OpLoadAC:
		c.A = c.b.ClockedRead(0xFF00 + uint16(c.C))
	case OpStoreA:
		c.b.ClockedWrite(instr.Imm16, c.A)
	case OpLoadA:
		c.A = c.b.ClockedRead(instr.Imm16)
	case OpLoadHLSP:
		c.HL.SetUint16(c.addSPSigned(instr.Disp))
		c.s.Tick(4)
	case OpLoadSPHL:
		c.SP = c.HL.Uint16()
		c.s.Tick(4)

	case OpIncPair:
		c.setPairValue(instr.Pair, c.pairValue(instr.Pair)+1)
		c.s.Tick(4)
	case OpDecPair:
		c.setPairValue(instr.Pair, c.pairValue(instr.Pair)-1)
		c.s.Tick(4)
	case OpInc:
		c.writeOperand(instr.Dst, c.increment(c.readOperand8(instr.Dst)))
	case OpDec:
		c.writeOperand(instr.Dst, c.decrement(c.readOperand8(instr.Dst)))
	case OpAddHL:
		c.addHL(c.pairValue(instr.Pair))
	case OpAddSP:
		c.SP = c.addSPSigned(instr.Disp)
		c.s.Tick(4)
		c.s.Tick(4)

	case OpAdd:
		c.add(c.sourceValue(instr), false)
	case OpAdc:
		c.add(c.sourceValue(instr), true)
	case OpSub:
		c.subtract(c.sourceValue(instr), false)
	case OpSbc:
		c.subtract(c.sourceValue(instr), true)
	case OpAnd:
		c.and(c.sourceValue(instr))
	case OpXor:
		c.xor(c.sourceValue(instr))
	case OpOr:
		c.or(c.sourceValue(instr))
	case OpCp:
		c.compare(c.sourceValue(instr))

	case OpRlca, OpRrca, OpRla, OpRra:
		c.rotateA(instr.Op)
	case OpDaa:
		c.decimalAdjust()
	case OpCpl:
		c.A = ^c.A
		c.setFlags(c.isFlagSet(flagZero), true, true, c.isFlagSet(flagCarry))
	case OpScf:
		c.setFlags(c.isFlagSet(flagZero), false, false, true)
	case OpCcf:
		c.setFlags(c.isFlagSet(flagZero), false, false, !c.isFlagSet(flagCarry))

	case OpJr:
		c.jumpRelative(instr)
	case OpJp:
		c.jumpAbsolute(instr)
	case OpJpHL:
		c.PC = c.HL.Uint16()
	case OpCall:
		c.call(instr)
	case OpRet:
		c.ret(instr)
	case OpReti:
		// unlike EI, RETI enables interrupts with no delay
		c.irq.IME = true
		c.ret(instr)
	case OpRst:
		c.rst(instr.Vector)
	case OpPush:
		c.s.Tick(4)
		c.pushWord(c.pairValue(instr.Pair))
	case OpPop:
		c.pair(instr.Pair).SetUint16(c.popWord())

	case OpDi:
		c.irq.IME = false
		if c.mode == ModeEnableIME {
			c.mode = ModeNormal
		}
	case OpEi:
		// IME turns on after the next instruction, not this one
		c.mode = ModeEnableIME

	case OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl:
		c.writeOperand(instr.Dst, c.shift(instr.Op, c.readOperand8(instr.Dst)))
	case OpBit:
		c.bit(instr.Bit, c.readOperand8(instr.Dst))
	case OpRes:
		c.writeOperand(instr.Dst, c.readOperand8(instr.Dst)&^(1<<instr.Bit))
	case OpSet:
		c.writeOperand(instr.Dst, c.readOperand8(instr.Dst)|1<<instr.Bit)
	}
}

// sourceValue resolves the source operand of an instruction: an
// immediate consumed at decode time, a memory read through HL, or a
// register.
func (c *CPU) sourceValue(instr Instruction) uint8 {
	if instr.Src == OperandImm {
		return instr.Imm
	}
	return c.readOperand8(instr.Src)
}

// readOperand8 reads the value of an 8-bit operand. The (HL) operand
// costs a machine cycle; registers are free.
func (c *CPU) readOperand8(operand Operand) uint8 {
	if operand == OperandHLPtr {
		return c.b.ClockedRead(c.HL.Uint16())
	}
	return *c.registerPointers[operand]
}

// writeOperand writes the value of an 8-bit operand, mirroring
// readOperand8.
func (c *CPU) writeOperand(operand Operand, value uint8) {
	if operand == OperandHLPtr {
		c.b.ClockedWrite(c.HL.Uint16(), value)
		return
	}
	*c.registerPointers[operand] = value
}

// pair returns the RegisterPair named by p. PairSP is not a register
// pair and must go through pairValue/setPairValue instead.
func (c *CPU) pair(p RegisterPairName) *RegisterPair {
	switch p {
	case PairBC:
		return c.BC
	case PairDE:
		return c.DE
	case PairAF:
		return c.AF
	default:
		return c.HL
	}
}

// pairValue returns the 16-bit value of a pair operand, treating SP
// as a pair.
func (c *CPU) pairValue(p RegisterPairName) uint16 {
	if p == PairSP {
		return c.SP
	}
	return c.pair(p).Uint16()
}

// setPairValue sets the 16-bit value of a pair operand, treating SP
// as a pair.
func (c *CPU) setPairValue(p RegisterPairName, value uint16) {
	if p == PairSP {
		c.SP = value
		return
	}
	c.pair(p).SetUint16(value)
}

// indirectAddress returns the address of an indirect A load or
// store, applying the post-increment/post-decrement of the HL forms.
func (c *CPU) indirectAddress(p RegisterPairName) uint16 {
	switch p {
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHLInc:
		address := c.HL.Uint16()
		c.HL.SetUint16(address + 1)
		return address
	default: // PairHLDec
		address := c.HL.Uint16()
		c.HL.SetUint16(address - 1)
		return address
	}
}
