// Package bus implements the memory bus of the DMG. Every CPU access
// goes through ClockedRead or ClockedWrite, which advance the
// peripheral clock before touching memory, so peripherals always
// observe bus traffic at the correct point in time.
package bus

import (
	"github.com/dmgb/dmgb/internal/cartridge"
	"github.com/dmgb/dmgb/internal/dma"
	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/ram"
	"github.com/dmgb/dmgb/internal/scheduler"
	"github.com/dmgb/dmgb/internal/serial"
	"github.com/dmgb/dmgb/internal/timer"
	"github.com/dmgb/dmgb/internal/types"
)

// Bus routes reads and writes to the cartridge, the RAM blocks and
// the I/O registers.
type Bus struct {
	cart cartridge.Cartridge

	vram *ram.RAM
	wram *ram.RAM
	oam  *ram.RAM
	hram *ram.RAM

	// video register file, FF40-FF4B; stored so software reads back
	// what it wrote even though no video hardware is modelled
	video [0x0C]uint8

	p1 uint8

	timer  *timer.Controller
	serial *serial.Controller
	dma    *dma.Controller
	irq    *interrupts.Service

	s *scheduler.Scheduler
}

// New returns a Bus routing accesses to the given cartridge and
// peripherals. The DMA engine is created here because it copies
// through the bus.
func New(cart cartridge.Cartridge, irq *interrupts.Service, s *scheduler.Scheduler, t *timer.Controller, sc *serial.Controller) *Bus {
	b := &Bus{
		cart:   cart,
		vram:   ram.New(0x2000),
		wram:   ram.New(0x2000),
		oam:    ram.New(0xA0),
		hram:   ram.New(0x7F),
		timer:  t,
		serial: sc,
		irq:    irq,
		s:      s,
	}
	b.dma = dma.New(b, b.oam)

	// post-boot video register values
	b.video[types.LCDC-0xFF40] = 0x91
	b.video[types.STAT-0xFF40] = 0x85

	return b
}

// DMA returns the OAM DMA engine so it can be attached to the clock.
func (b *Bus) DMA() *dma.Controller {
	return b.dma
}

// ClockedRead advances the clock by one machine cycle and then reads
// the byte at the given address.
func (b *Bus) ClockedRead(address uint16) uint8 {
	b.s.Tick(4)
	return b.Read(address)
}

// ClockedWrite advances the clock by one machine cycle and then
// writes the byte at the given address.
func (b *Bus) ClockedWrite(address uint16, value uint8) {
	b.s.Tick(4)
	b.Write(address, value)
}

// Read reads the byte at the given address without consuming any
// machine cycles. The DMA engine and debug tooling use this form.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return b.cart.Read(address)
	case address < 0xA000:
		return b.vram.Read(address - 0x8000)
	case address < 0xC000:
		return b.cart.Read(address)
	case address < 0xE000:
		return b.wram.Read(address - 0xC000)
	case address < 0xFE00:
		// echo RAM mirrors 0xC000-0xDDFF
		return b.wram.Read(address - 0xE000)
	case address < 0xFEA0:
		if b.dma.IsTransferring() {
			return 0xFF
		}
		return b.oam.Read(address - 0xFE00)
	case address < 0xFF00:
		return 0x00 // unusable region
	case address < 0xFF80:
		return b.readIO(address)
	case address < 0xFFFF:
		return b.hram.Read(address - 0xFF80)
	default:
		return b.irq.Enable
	}
}

// Write writes the byte at the given address without consuming any
// machine cycles.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		b.cart.Write(address, value)
	case address < 0xA000:
		b.vram.Write(address-0x8000, value)
	case address < 0xC000:
		b.cart.Write(address, value)
	case address < 0xE000:
		b.wram.Write(address-0xC000, value)
	case address < 0xFE00:
		b.wram.Write(address-0xE000, value)
	case address < 0xFEA0:
		if !b.dma.IsTransferring() {
			b.oam.Write(address-0xFE00, value)
		}
	case address < 0xFF00:
		// unusable region, writes are dropped
	case address < 0xFF80:
		b.writeIO(address, value)
	case address < 0xFFFF:
		b.hram.Write(address-0xFF80, value)
	default:
		b.irq.Enable = value
	}
}

func (b *Bus) readIO(address uint16) uint8 {
	switch {
	case address == types.P1:
		// only the select bits are writable; with no buttons held the
		// input lines all read high
		return 0xC0 | b.p1&0x30 | 0x0F
	case address == types.SB || address == types.SC:
		return b.serial.Read(address)
	case address >= types.DIV && address <= types.TAC:
		return b.timer.Read(address)
	case address == types.IF:
		return b.irq.ReadFlag()
	case address == types.DMA:
		return b.dma.Value()
	case address == types.STAT:
		return b.video[address-0xFF40] | 0x80
	case address >= 0xFF40 && address <= 0xFF4B:
		return b.video[address-0xFF40]
	default:
		return 0xFF
	}
}

func (b *Bus) writeIO(address uint16, value uint8) {
	switch {
	case address == types.P1:
		b.p1 = value & 0x30
	case address == types.SB || address == types.SC:
		b.serial.Write(address, value)
	case address >= types.DIV && address <= types.TAC:
		b.timer.Write(address, value)
	case address == types.IF:
		b.irq.WriteFlag(value)
	case address == types.DMA:
		b.video[address-0xFF40] = value
		b.dma.Start(value)
	case address >= 0xFF40 && address <= 0xFF4B:
		b.video[address-0xFF40] = value
	}
}
