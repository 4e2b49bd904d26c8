package cpu

import "fmt"

// UnknownOpcodeError is returned by Step when the fetched byte is one
// of the 11 opcodes the LR35902 does not define. PC is the address
// the byte was fetched from.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
