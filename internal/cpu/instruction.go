package cpu

import "fmt"

// Operation identifies what a decoded instruction does. The set is
// closed: the decoder produces nothing else, and the execution unit
// handles every value.
type Operation uint8

const (
	OpNop Operation = iota
	OpStop
	OpHalt

	OpLoad        // LD r, r' / LD r, d8
	OpLoadPairImm // LD rr, d16
	OpStoreSP     // LD (a16), SP
	OpStoreAInd   // LD (rr), A
	OpLoadAInd    // LD A, (rr)
	OpStoreAHigh  // LDH (a8), A
	OpLoadAHigh   // LDH A, (a8)
	OpStoreAC     // LD (C), A
	OpLoadAC      // LD A, (C)
	OpStoreA      // LD (a16), A
	OpLoadA       // LD A, (a16)
	OpLoadHLSP    // LD HL, SP+e8
	OpLoadSPHL    // LD SP, HL

	OpIncPair
	OpDecPair
	OpInc
	OpDec
	OpAddHL
	OpAddSP

	OpAdd
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp

	OpRlca
	OpRrca
	OpRla
	OpRra
	OpDaa
	OpCpl
	OpScf
	OpCcf

	OpJr
	OpJp
	OpJpHL
	OpCall
	OpRet
	OpReti
	OpRst
	OpPush
	OpPop

	OpDi
	OpEi

	// CB-prefixed operations
	OpRlc
	OpRrc
	OpRl
	OpRr
	OpSla
	OpSra
	OpSwap
	OpSrl
	OpBit
	OpRes
	OpSet
)

// Operand identifies an 8-bit instruction operand. The first eight
// values follow the cyclical encoding the opcode map uses, so an
// operand can be extracted from an opcode with a mask.
type Operand uint8

const (
	OperandB Operand = iota
	OperandC
	OperandD
	OperandE
	OperandH
	OperandL
	OperandHLPtr // memory at the address in HL
	OperandA
	OperandImm // the Imm field of the instruction
	OperandNone
)

func (o Operand) String() string {
	switch o {
	case OperandB:
		return "B"
	case OperandC:
		return "C"
	case OperandD:
		return "D"
	case OperandE:
		return "E"
	case OperandH:
		return "H"
	case OperandL:
		return "L"
	case OperandHLPtr:
		return "(HL)"
	case OperandA:
		return "A"
	case OperandImm:
		return "d8"
	}
	return "?"
}

// RegisterPairName identifies a 16-bit operand: a register pair, SP,
// or one of the post-increment/post-decrement HL forms.
type RegisterPairName uint8

const (
	PairBC RegisterPairName = iota
	PairDE
	PairHL
	PairSP
	PairAF
	PairHLInc // (HL+), HL incremented after the access
	PairHLDec // (HL-), HL decremented after the access
)

func (p RegisterPairName) String() string {
	switch p {
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		return "HL"
	case PairSP:
		return "SP"
	case PairAF:
		return "AF"
	case PairHLInc:
		return "HL+"
	case PairHLDec:
		return "HL-"
	}
	return "?"
}

// Condition identifies the flag condition of a conditional jump,
// call or return. CondNone means the instruction is unconditional.
type Condition uint8

const (
	CondNone Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Instruction is a fully decoded instruction. Immediate bytes are
// consumed from the bus during decode, so executing an Instruction
// never fetches.
type Instruction struct {
	Op   Operation
	Dst  Operand
	Src  Operand
	Pair RegisterPairName
	Cond Condition

	Imm    uint8  // 8-bit immediate
	Imm16  uint16 // 16-bit immediate or absolute address
	Disp   int8   // signed displacement (JR, ADD SP, LD HL,SP+e8)
	Bit    uint8  // bit index of BIT/RES/SET
	Vector uint16 // RST target

	Raw uint8 // the opcode byte
	CB  bool  // Raw follows a CB prefix
}

var operationNames = map[Operation]string{
	OpNop: "NOP", OpStop: "STOP", OpHalt: "HALT",
	OpDaa: "DAA", OpCpl: "CPL", OpScf: "SCF", OpCcf: "CCF",
	OpRlca: "RLCA", OpRrca: "RRCA", OpRla: "RLA", OpRra: "RRA",
	OpJpHL: "JP HL", OpRet: "RET", OpReti: "RETI",
	OpDi: "DI", OpEi: "EI",
	OpLoadSPHL: "LD SP, HL",
	OpStoreAC:  "LD (C), A", OpLoadAC: "LD A, (C)",
	OpAdd: "ADD", OpAdc: "ADC", OpSub: "SUB", OpSbc: "SBC",
	OpAnd: "AND", OpXor: "XOR", OpOr: "OR", OpCp: "CP",
	OpRlc: "RLC", OpRrc: "RRC", OpRl: "RL", OpRr: "RR",
	OpSla: "SLA", OpSra: "SRA", OpSwap: "SWAP", OpSrl: "SRL",
}

// String returns the mnemonic of the instruction with its decoded
// operands, e.g. "LD A, (HL)" or "JR NZ, -5".
func (i Instruction) String() string {
	switch i.Op {
	case OpLoad:
		if i.Src == OperandImm {
			return fmt.Sprintf("LD %s, 0x%02X", i.Dst, i.Imm)
		}
		return fmt.Sprintf("LD %s, %s", i.Dst, i.Src)
	case OpLoadPairImm:
		return fmt.Sprintf("LD %s, 0x%04X", i.Pair, i.Imm16)
	case OpStoreSP:
		return fmt.Sprintf("LD (0x%04X), SP", i.Imm16)
	case OpStoreAInd:
		return fmt.Sprintf("LD (%s), A", i.Pair)
	case OpLoadAInd:
		return fmt.Sprintf("LD A, (%s)", i.Pair)
	case OpStoreAHigh:
		return fmt.Sprintf("LDH (0x%02X), A", i.Imm)
	case OpLoadAHigh:
		return fmt.Sprintf("LDH A, (0x%02X)", i.Imm)
	case OpStoreA:
		return fmt.Sprintf("LD (0x%04X), A", i.Imm16)
	case OpLoadA:
		return fmt.Sprintf("LD A, (0x%04X)", i.Imm16)
	case OpLoadHLSP:
		return fmt.Sprintf("LD HL, SP%+d", i.Disp)
	case OpIncPair:
		return fmt.Sprintf("INC %s", i.Pair)
	case OpDecPair:
		return fmt.Sprintf("DEC %s", i.Pair)
	case OpInc:
		return fmt.Sprintf("INC %s", i.Dst)
	case OpDec:
		return fmt.Sprintf("DEC %s", i.Dst)
	case OpAddHL:
		return fmt.Sprintf("ADD HL, %s", i.Pair)
	case OpAddSP:
		return fmt.Sprintf("ADD SP, %+d", i.Disp)
	case OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp:
		if i.Src == OperandImm {
			return fmt.Sprintf("%s 0x%02X", operationNames[i.Op], i.Imm)
		}
		return fmt.Sprintf("%s %s", operationNames[i.Op], i.Src)
	case OpJr:
		if i.Cond != CondNone {
			return fmt.Sprintf("JR %s, %+d", i.Cond, i.Disp)
		}
		return fmt.Sprintf("JR %+d", i.Disp)
	case OpJp:
		if i.Cond != CondNone {
			return fmt.Sprintf("JP %s, 0x%04X", i.Cond, i.Imm16)
		}
		return fmt.Sprintf("JP 0x%04X", i.Imm16)
	case OpCall:
		if i.Cond != CondNone {
			return fmt.Sprintf("CALL %s, 0x%04X", i.Cond, i.Imm16)
		}
		return fmt.Sprintf("CALL 0x%04X", i.Imm16)
	case OpRet:
		if i.Cond != CondNone {
			return fmt.Sprintf("RET %s", i.Cond)
		}
		return "RET"
	case OpRst:
		return fmt.Sprintf("RST 0x%02X", i.Vector)
	case OpPush:
		return fmt.Sprintf("PUSH %s", i.Pair)
	case OpPop:
		return fmt.Sprintf("POP %s", i.Pair)
	case OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl:
		return fmt.Sprintf("%s %s", operationNames[i.Op], i.Dst)
	case OpBit:
		return fmt.Sprintf("BIT %d, %s", i.Bit, i.Dst)
	case OpRes:
		return fmt.Sprintf("RES %d, %s", i.Bit, i.Dst)
	case OpSet:
		return fmt.Sprintf("SET %d, %s", i.Bit, i.Dst)
	}
	if name, ok := operationNames[i.Op]; ok {
		return name
	}
	return fmt.Sprintf("DB 0x%02X", i.Raw)
}
