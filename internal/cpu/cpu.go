// Package cpu implements the Sharp LR35902, the 8-bit core of the
// Game Boy. The CPU owns nothing but its registers: memory goes
// through the Bus, elapsed time through the scheduler, and interrupt
// state through the interrupt service.
package cpu

import (
	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/scheduler"
)

const (
	// ClockSpeed is the clock speed of the CPU in ticks per second.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal fetch-decode-execute mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT with IME set; the CPU idles until
	// an interrupt is pending, then services it.
	ModeHalt
	// ModeStop is entered by STOP; the CPU idles until an interrupt
	// is pending.
	ModeStop
	// ModeHaltBug is entered by HALT with IME clear while an
	// interrupt is already pending; the next opcode byte is fetched
	// without advancing PC, so it executes twice.
	ModeHaltBug
	// ModeHaltDI is entered by HALT with IME clear and nothing
	// pending; the CPU idles until an interrupt is pending and then
	// resumes without servicing it.
	ModeHaltDI
	// ModeEnableIME is the one-instruction window after EI; IME is
	// set just before the next instruction runs.
	ModeEnableIME
)

// Bus is the memory the CPU executes against. The Clocked forms
// advance the scheduler by one machine cycle before the access and
// carry all instruction traffic; the raw forms are free of time and
// exist for hardware-internal accesses.
type Bus interface {
	ClockedRead(address uint16) uint8
	ClockedWrite(address uint16, value uint8)

	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU executes LR35902 instructions. It is not safe for concurrent
// use; Step must be driven from a single goroutine.
type CPU struct {
	// PC is the program counter, the address of the next byte to be
	// fetched.
	PC uint16
	// SP is the stack pointer. The stack grows downwards.
	SP uint16
	Registers

	registerPointers [8]*Register

	mode mode

	b   Bus
	irq *interrupts.Service
	s   *scheduler.Scheduler

	// TraceFunc, when set, receives every executed instruction.
	TraceFunc func(Instruction)
}

// New returns a CPU wired to the given bus, interrupt service and
// scheduler, with the register file in the post-boot state.
func New(b Bus, irq *interrupts.Service, s *scheduler.Scheduler) *CPU {
	c := &CPU{
		b:   b,
		irq: irq,
		s:   s,
	}
	c.createPairs()

	// register values at the end of the DMG boot ROM
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100

	return c
}

// Step executes one instruction, or one idle machine cycle when the
// CPU is halted or stopped, and services one pending interrupt if
// IME allows it. It returns an UnknownOpcodeError when the fetched
// byte is not a defined opcode; the CPU is left stopped at the
// offending byte and must not be stepped further.
func (c *CPU) Step() error {
	switch c.mode {
	case ModeNormal:
		if err := c.runInstruction(); err != nil {
			return err
		}
	case ModeHalt, ModeStop:
		c.s.Tick(4)
		// halt and stop wake on a pending interrupt regardless of
		// IME; whether it gets serviced is decided below
		if !c.irq.HasPending() {
			return nil
		}
		c.mode = ModeNormal
	case ModeHaltDI:
		c.s.Tick(4)
		if c.irq.HasPending() {
			c.mode = ModeNormal
		}
		return nil
	case ModeEnableIME:
		c.irq.IME = true
		c.mode = ModeNormal
		if err := c.runInstruction(); err != nil {
			return err
		}
	case ModeHaltBug:
		c.mode = ModeNormal
		opcode := c.readOperand()
		c.PC-- // the fetch does not advance PC, so the byte runs again
		instr, err := c.decode(opcode)
		if err != nil {
			return err
		}
		c.execute(instr)
		if c.TraceFunc != nil {
			c.TraceFunc(instr)
		}
	}

	if c.irq.IME && c.irq.HasPending() {
		c.acceptInterrupt()
	}

	return nil
}

// runInstruction fetches, decodes and executes a single instruction.
func (c *CPU) runInstruction() error {
	opcode := c.readOperand()
	instr, err := c.decode(opcode)
	if err != nil {
		return err
	}
	c.execute(instr)

	if c.TraceFunc != nil {
		c.TraceFunc(instr)
	}
	return nil
}

// acceptInterrupt services the highest-priority pending interrupt:
// two idle machine cycles, the return address pushed high byte
// first, and the jump to the vector. Five machine cycles in total,
// and IME is left clear.
func (c *CPU) acceptInterrupt() {
	c.s.Tick(4)
	c.s.Tick(4)

	c.SP--
	c.b.ClockedWrite(c.SP, uint8(c.PC>>8))

	// the vector is resolved between the two pushes; the push of the
	// high byte can itself change which interrupt wins
	vector := c.irq.Vector()

	c.SP--
	c.b.ClockedWrite(c.SP, uint8(c.PC))

	c.PC = vector
	c.irq.IME = false
	c.s.Tick(4)

	c.mode = ModeNormal
}

// readOperand reads the byte at PC and advances it. Fetches and
// immediate operands both come through here, one machine cycle each.
func (c *CPU) readOperand() uint8 {
	value := c.b.ClockedRead(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a 16-bit little-endian operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// Mode returns the current execution mode.
func (c *CPU) Mode() mode {
	return c.mode
}
