package bus

import (
	"testing"

	"github.com/dmgb/dmgb/internal/cartridge"
	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/scheduler"
	"github.com/dmgb/dmgb/internal/serial"
	"github.com/dmgb/dmgb/internal/timer"
	"github.com/dmgb/dmgb/internal/types"
)

func testROM() []byte {
	rom := make([]byte, cartridge.MinROMSize)
	copy(rom[0x134:], "BUSTEST")
	return rom
}

func newTestBus(t *testing.T) (*Bus, *interrupts.Service, *scheduler.Scheduler) {
	t.Helper()
	cart, err := cartridge.New(testROM())
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}

	irq := interrupts.NewService()
	s := scheduler.New()
	tm := timer.NewController(irq)
	ser := serial.NewController(irq)
	b := New(cart, irq, s, tm, ser)
	s.Attach(tm, ser, b.DMA())
	return b, irq, s
}

func TestClockedAccessAdvancesClock(t *testing.T) {
	b, _, s := newTestBus(t)

	start := s.Cycle()
	b.ClockedRead(0xC000)
	b.ClockedWrite(0xC000, 0x42)

	if got := s.Cycle() - start; got != 8 {
		t.Errorf("two accesses advanced %d ticks, want 8", got)
	}
}

func TestWRAMAndEcho(t *testing.T) {
	b, _, _ := newTestBus(t)

	b.Write(0xC123, 0x42)
	if got := b.Read(0xE123); got != 0x42 {
		t.Errorf("echo read = %02X, want 42", got)
	}

	b.Write(0xF000, 0x99) // echo write lands in WRAM
	if got := b.Read(0xD000); got != 0x99 {
		t.Errorf("WRAM read = %02X, want 99", got)
	}
}

func TestUnusableRegion(t *testing.T) {
	b, _, _ := newTestBus(t)

	b.Write(0xFEA0, 0xFF)
	if got := b.Read(0xFEA0); got != 0x00 {
		t.Errorf("unusable read = %02X, want 00", got)
	}
}

func TestInterruptRegisters(t *testing.T) {
	b, irq, _ := newTestBus(t)

	b.Write(types.IF, 0x01)
	if irq.Flag != 0x01 {
		t.Errorf("IF = %02X, want 01", irq.Flag)
	}
	if got := b.Read(types.IF); got != 0xE1 {
		t.Errorf("IF reads %02X, want E1 (upper bits set)", got)
	}

	b.Write(types.IE, 0x1F)
	if got := b.Read(types.IE); got != 0x1F {
		t.Errorf("IE reads %02X, want 1F", got)
	}
}

func TestUnmappedIOReadsFF(t *testing.T) {
	b, _, _ := newTestBus(t)

	for _, address := range []uint16{0xFF03, 0xFF10, 0xFF30, 0xFF4C, 0xFF7F} {
		if got := b.Read(address); got != 0xFF {
			t.Errorf("read(%04X) = %02X, want FF", address, got)
		}
	}
}

func TestOAMDMA(t *testing.T) {
	b, _, s := newTestBus(t)

	for i := 0; i < 0xA0; i++ {
		b.Write(0xC000+uint16(i), uint8(i))
	}
	b.Write(0xFE00, 0xAA) // stale OAM byte, must be overwritten

	b.Write(types.DMA, 0xC0)
	if got := b.Read(types.DMA); got != 0xC0 {
		t.Errorf("DMA reads %02X, want C0", got)
	}

	// a few cycles in, OAM is blocked
	s.Tick(8)
	s.Tick(8)
	if got := b.Read(0xFE00); got != 0xFF {
		t.Errorf("OAM read during transfer = %02X, want FF", got)
	}
	b.Write(0xFE10, 0x00) // dropped

	// finish the transfer: 160 bytes at 4 ticks each
	for i := 0; i < 160; i++ {
		s.Tick(4)
	}

	for i := 0; i < 0xA0; i++ {
		if got := b.Read(0xFE00 + uint16(i)); got != uint8(i) {
			t.Fatalf("OAM[%02X] = %02X, want %02X", i, got, i)
		}
	}
}

func TestOAMDMASourceFolding(t *testing.T) {
	b, _, s := newTestBus(t)

	b.Write(0xC000, 0x42)
	b.Write(types.DMA, 0xE0) // echo region folds down to 0xC000

	for i := 0; i < 164; i++ {
		s.Tick(4)
	}

	if got := b.Read(0xFE00); got != 0x42 {
		t.Errorf("OAM[0] = %02X, want 42", got)
	}
}

func TestVideoRegistersStoreWrites(t *testing.T) {
	b, _, _ := newTestBus(t)

	b.Write(types.LCDC, 0x80)
	if got := b.Read(types.LCDC); got != 0x80 {
		t.Errorf("LCDC = %02X, want 80", got)
	}

	if got := b.Read(types.STAT); got&types.Bit7 == 0 {
		t.Errorf("STAT = %02X, bit 7 must read 1", got)
	}
}

func TestJoypadNoButtonsPressed(t *testing.T) {
	b, _, _ := newTestBus(t)

	b.Write(types.P1, 0x20)
	if got := b.Read(types.P1); got&0x0F != 0x0F {
		t.Errorf("P1 = %02X, input lines must read high", got)
	}
}
