package cpu

import (
	"testing"

	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/scheduler"
)

// testBus is a flat 64KiB memory that still honors the clocked
// access protocol, so cycle counts observed through the scheduler
// are the real ones.
type testBus struct {
	mem [0x10000]byte
	s   *scheduler.Scheduler
}

func (b *testBus) ClockedRead(address uint16) uint8 {
	b.s.Tick(4)
	return b.mem[address]
}

func (b *testBus) ClockedWrite(address uint16, value uint8) {
	b.s.Tick(4)
	b.mem[address] = value
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, value uint8) {
	b.mem[address] = value
}

// newTestCPU returns a CPU with the given program placed at 0xC000
// and PC pointing at it.
func newTestCPU(program ...byte) (*CPU, *testBus) {
	s := scheduler.New()
	b := &testBus{s: s}
	c := New(b, interrupts.NewService(), s)
	c.PC = 0xC000
	copy(b.mem[0xC000:], program)
	return c, b
}

func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
}

func TestPowerOnState(t *testing.T) {
	c, _ := newTestCPU()

	if got := c.AF.Uint16(); got != 0x01B0 {
		t.Errorf("AF = %04X, want 01B0", got)
	}
	if got := c.BC.Uint16(); got != 0x0013 {
		t.Errorf("BC = %04X, want 0013", got)
	}
	if got := c.DE.Uint16(); got != 0x00D8 {
		t.Errorf("DE = %04X, want 00D8", got)
	}
	if got := c.HL.Uint16(); got != 0x014D {
		t.Errorf("HL = %04X, want 014D", got)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP = %04X, want FFFE", c.SP)
	}
}

func TestRegisterPairs(t *testing.T) {
	c, _ := newTestCPU()

	c.BC.SetUint16(0x1234)
	if c.B != 0x12 || c.C != 0x34 {
		t.Errorf("B, C = %02X, %02X, want 12, 34", c.B, c.C)
	}

	c.H, c.L = 0xAB, 0xCD
	if got := c.HL.Uint16(); got != 0xABCD {
		t.Errorf("HL = %04X, want ABCD", got)
	}

	// the low nibble of F can never be set
	c.AF.SetUint16(0xBEEF)
	if got := c.AF.Uint16(); got != 0xBEE0 {
		t.Errorf("AF = %04X, want BEE0", got)
	}
}
