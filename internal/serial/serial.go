// Package serial implements the serial port. A transfer driven by
// the internal clock shifts one bit every 512 ticks; with no link
// partner attached, ones are shifted in, as if the cable were
// unplugged. Completed outgoing bytes are handed to an optional
// sink, which is how test ROMs report their results.
package serial

import (
	"io"

	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/types"
)

const ticksPerBit = 512

// Controller is the serial controller. Before a transfer, SB holds
// the byte to be sent; during one, the outgoing bits are shifted out
// of SB while incoming bits are shifted in.
type Controller struct {
	sb uint8
	sc uint8

	counter  uint16 // ticks into the current bit
	bitsLeft uint8  // remaining bits of the active transfer
	outgoing uint8  // byte captured when the transfer started

	irq  *interrupts.Service
	sink io.Writer
}

// NewController returns a new serial Controller with no sink
// attached.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		sc:  0x7E,
		irq: irq,
	}
}

// AttachSink directs completed outgoing bytes to w. The controller
// hands over one owned byte per completed transfer.
func (c *Controller) AttachSink(w io.Writer) {
	c.sink = w
}

// Tick advances the serial clock by the given number of ticks.
func (c *Controller) Tick(ticks uint8) {
	if c.bitsLeft == 0 || c.sc&types.Bit0 == 0 {
		return
	}

	for i := uint8(0); i < ticks; i++ {
		c.counter++
		if c.counter < ticksPerBit {
			continue
		}
		c.counter = 0

		// no attached device, so the incoming bit is always 1
		c.sb = c.sb<<1 | 1
		c.bitsLeft--

		if c.bitsLeft == 0 {
			c.sc &^= types.Bit7
			c.irq.Request(interrupts.SerialFlag)
			if c.sink != nil {
				c.sink.Write([]byte{c.outgoing})
			}
			return
		}
	}
}

// Read returns the value of the serial register at the given
// address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.sb
	case types.SC:
		return c.sc | 0x7E // bits 1-6 are unused and read as 1
	}
	return 0xFF
}

// Write writes to the serial register at the given address. Setting
// bit 7 of SC with the internal clock selected starts a transfer.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.sb = value
	case types.SC:
		c.sc = value | 0x7E
		if value&types.Bit7 != 0 && value&types.Bit0 != 0 {
			c.outgoing = c.sb
			c.bitsLeft = 8
			c.counter = 0
		}
	}
}
