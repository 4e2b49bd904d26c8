package cpu

// decode turns an opcode byte into an Instruction, consuming any
// immediate bytes from the bus. It is the only opcode decoder in the
// package; both the 256 unprefixed bytes and the 256 CB-prefixed
// bytes pass through here.
//
// The opcode map is decoded by blocks. Bits 6-7 select the block,
// bits 3-5 and 0-2 select the operation and operand within it; the
// operand encoding is the cyclical {B C D E H L (HL) A} order shared
// by Operand.
func (c *CPU) decode(opcode uint8) (Instruction, error) {
	instr := Instruction{Raw: opcode}

	switch opcode { // irregular encodings first
	case 0x00: // NOP
		instr.Op = OpNop
	case 0x08: // LD (a16), SP
		instr.Op = OpStoreSP
		instr.Imm16 = c.readOperand16()
	case 0x10: // STOP
		instr.Op = OpStop
	case 0x76: // HALT (falls in the middle of the LD block)
		instr.Op = OpHalt
	case 0xC3: // JP a16
		instr.Op = OpJp
		instr.Imm16 = c.readOperand16()
	case 0xC9: // RET
		instr.Op = OpRet
	case 0xCB:
		return c.decodeCB(c.readOperand()), nil
	case 0xCD: // CALL a16
		instr.Op = OpCall
		instr.Imm16 = c.readOperand16()
	case 0xD9: // RETI
		instr.Op = OpReti
	case 0xE0: // LDH (a8), A
		instr.Op = OpStoreAHigh
		instr.Imm = c.readOperand()
	case 0xE2: // LD (C), A
		instr.Op = OpStoreAC
	case 0xE8: // ADD SP, e8
		instr.Op = OpAddSP
		instr.Disp = int8(c.readOperand())
	case 0xE9: // JP HL
		instr.Op = OpJpHL
	case 0xEA: // LD (a16), A
		instr.Op = OpStoreA
		instr.Imm16 = c.readOperand16()
	case 0xF0: // LDH A, (a8)
		instr.Op = OpLoadAHigh
		instr.Imm = c.readOperand()
	case 0xF2: // LD A, (C)
		instr.Op = OpLoadAC
	case 0xF3: // DI
		instr.Op = OpDi
	case 0xF8: // LD HL, SP+e8
		instr.Op = OpLoadHLSP
		instr.Disp = int8(c.readOperand())
	case 0xF9: // LD SP, HL
		instr.Op = OpLoadSPHL
	case 0xFA: // LD A, (a16)
		instr.Op = OpLoadA
		instr.Imm16 = c.readOperand16()
	case 0xFB: // EI
		instr.Op = OpEi
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return instr, UnknownOpcodeError{Opcode: opcode, PC: c.PC - 1}
	default:
		switch opcode >> 6 & 0x3 {
		case 0: // 0x00 - 0x3F
			switch opcode & 0x7 {
			case 0: // JR [cc,] e8
				instr.Op = OpJr
				if opcode != 0x18 {
					instr.Cond = condition(opcode)
				}
				instr.Disp = int8(c.readOperand())
			case 1: // LD rr, d16 / ADD HL, rr
				instr.Pair = RegisterPairName(opcode >> 4 & 0x3)
				if opcode>>3&1 == 1 {
					instr.Op = OpAddHL
				} else {
					instr.Op = OpLoadPairImm
					instr.Imm16 = c.readOperand16()
				}
			case 2: // LD (rr), A / LD A, (rr)
				instr.Pair = indirectPair(opcode)
				if opcode>>3&1 == 1 {
					instr.Op = OpLoadAInd
				} else {
					instr.Op = OpStoreAInd
				}
			case 3: // INC rr / DEC rr
				instr.Pair = RegisterPairName(opcode >> 4 & 0x3)
				if opcode>>3&1 == 1 {
					instr.Op = OpDecPair
				} else {
					instr.Op = OpIncPair
				}
			case 4: // INC r
				instr.Op = OpInc
				instr.Dst = Operand(opcode >> 3 & 0x7)
			case 5: // DEC r
				instr.Op = OpDec
				instr.Dst = Operand(opcode >> 3 & 0x7)
			case 6: // LD r, d8
				instr.Op = OpLoad
				instr.Dst = Operand(opcode >> 3 & 0x7)
				instr.Src = OperandImm
				instr.Imm = c.readOperand()
			case 7: // accumulator and flag operations
				instr.Op = OpRlca + Operation(opcode>>3&0x7)
			}
		case 1: // 0x40 - 0x7F: LD r, r'
			instr.Op = OpLoad
			instr.Dst = Operand(opcode >> 3 & 0x7)
			instr.Src = Operand(opcode & 0x7)
		case 2: // 0x80 - 0xBF: ALU A, r
			instr.Op = OpAdd + Operation(opcode>>3&0x7)
			instr.Src = Operand(opcode & 0x7)
		case 3: // 0xC0 - 0xFF
			switch opcode & 0x7 {
			case 0: // RET cc
				instr.Op = OpRet
				instr.Cond = condition(opcode)
			case 1: // POP rr
				instr.Op = OpPop
				instr.Pair = stackPair(opcode)
			case 2: // JP cc, a16
				instr.Op = OpJp
				instr.Cond = condition(opcode)
				instr.Imm16 = c.readOperand16()
			case 4: // CALL cc, a16
				instr.Op = OpCall
				instr.Cond = condition(opcode)
				instr.Imm16 = c.readOperand16()
			case 5: // PUSH rr
				instr.Op = OpPush
				instr.Pair = stackPair(opcode)
			case 6: // ALU A, d8
				instr.Op = OpAdd + Operation(opcode>>3&0x7)
				instr.Src = OperandImm
				instr.Imm = c.readOperand()
			case 7: // RST
				instr.Op = OpRst
				instr.Vector = uint16(opcode>>3&0x7) * 8
			}
		}
	}

	return instr, nil
}

// decodeCB decodes the byte following a CB prefix. Every value is
// defined, so decodeCB cannot fail.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func (c *CPU) decodeCB(opcode uint8) Instruction {
	instr := Instruction{Raw: opcode, CB: true, Dst: Operand(opcode & 0x7)}

	switch opcode >> 6 & 0x3 {
	case 0: // rotates and shifts
		instr.Op = OpRlc + Operation(opcode>>3&0x7)
	case 1:
		instr.Op = OpBit
		instr.Bit = opcode >> 3 & 0x7
	case 2:
		instr.Op = OpRes
		instr.Bit = opcode >> 3 & 0x7
	case 3:
		instr.Op = OpSet
		instr.Bit = opcode >> 3 & 0x7
	}

	return instr
}

// condition extracts the flag condition encoded in bits 3-4.
func condition(opcode uint8) Condition {
	return CondNZ + Condition(opcode>>3&0x3)
}

// indirectPair maps bits 4-5 of the indirect load opcodes to their
// 16-bit operand; the upper two encodings are the post-increment and
// post-decrement HL forms.
func indirectPair(opcode uint8) RegisterPairName {
	switch opcode >> 4 & 0x3 {
	case 0:
		return PairBC
	case 1:
		return PairDE
	case 2:
		return PairHLInc
	default:
		return PairHLDec
	}
}

// stackPair maps bits 4-5 of the PUSH/POP opcodes to their register
// pair; the fourth encoding is AF rather than SP.
func stackPair(opcode uint8) RegisterPairName {
	if opcode>>4&0x3 == 3 {
		return PairAF
	}
	return RegisterPairName(opcode >> 4 & 0x3)
}
