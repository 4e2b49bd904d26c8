// Package dma implements the OAM DMA engine, which copies a page of
// 160 bytes into OAM one byte per machine cycle. While a transfer is
// running the bus blocks CPU access to OAM.
package dma

import (
	"github.com/dmgb/dmgb/internal/ram"
)

// Bus is the read capability the DMA engine uses to fetch source
// bytes. Reads are raw: they consume no machine cycles themselves,
// as the engine is clocked by the CPU like any other peripheral.
type Bus interface {
	Read(address uint16) uint8
}

// Controller performs OAM DMA transfers.
type Controller struct {
	enabled    bool
	restarting bool

	timer  uint16
	source uint16
	value  uint8

	bus Bus
	oam *ram.RAM
}

// New returns a DMA Controller copying into the given OAM block.
func New(bus Bus, oam *ram.RAM) *Controller {
	return &Controller{
		bus: bus,
		oam: oam,
	}
}

// Start begins a transfer of the 160 bytes at value<<8. Starting a
// transfer while one is running restarts it, and the bus stays
// blocked in between.
func (d *Controller) Start(value uint8) {
	d.value = value
	d.source = uint16(value) << 8
	d.timer = 0

	d.restarting = d.enabled
	d.enabled = true
}

// Value returns the last value written to the DMA register.
func (d *Controller) Value() uint8 {
	return d.value
}

// IsTransferring reports whether OAM is currently blocked by an
// active transfer.
func (d *Controller) IsTransferring() bool {
	return d.timer > 4 || d.restarting
}

// Tick advances the transfer by the given number of clock ticks,
// copying one byte every machine cycle after a short startup delay.
func (d *Controller) Tick(ticks uint8) {
	if !d.enabled {
		return
	}

	for i := uint8(0); i < ticks; i++ {
		d.timer++
		if d.timer%4 != 0 {
			continue
		}
		d.restarting = false

		offset := (d.timer - 4) >> 2
		source := d.source + offset

		// sources above the echo region fold down into WRAM
		if source >= 0xE000 {
			source &^= 0x2000
		}

		d.oam.Write(offset, d.bus.Read(source))

		// 160 bytes, 4 ticks each
		if d.timer >= 640 {
			d.enabled = false
			d.timer = 0
			return
		}
	}
}
