// Package timer provides an implementation of the Game Boy timer.
// Only its interrupt-request behavior matters to the CPU core; the
// divider and TIMA arithmetic exist so software observes the real
// register behavior.
package timer

import (
	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/types"
)

// bits maps the TAC frequency selection to the bit of the internal
// divider whose falling edge increments TIMA.
//
//	00 = bit 9 (4096 Hz)
//	01 = bit 3 (262144 Hz)
//	10 = bit 5 (65536 Hz)
//	11 = bit 7 (16384 Hz)
var bits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is the timer controller. It owns the internal 16-bit
// divider, of which DIV exposes the upper byte, and increments TIMA
// on falling edges of the TAC-selected divider bit. On TIMA overflow
// the timer interrupt is requested and TIMA is reloaded from TMA
// after a short delay.
type Controller struct {
	div uint16

	tima uint8
	tma  uint8
	tac  uint8

	currentBit uint16
	enabled    bool
	lastBit    bool

	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a new timer Controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		currentBit: bits[0],
		tac:        0xF8,
		irq:        irq,
	}
}

// Tick advances the timer by the given number of clock ticks.
func (c *Controller) Tick(ticks uint8) {
	for i := uint8(0); i < ticks; i++ {
		c.div++
		c.detectEdge()

		if c.overflow {
			c.ticksSinceOverflow++

			switch c.ticksSinceOverflow {
			case 4:
				c.irq.Request(interrupts.TimerFlag)
			case 5:
				c.tima = c.tma
			case 6:
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		}
	}
}

// detectEdge increments TIMA when the selected divider bit falls.
// The enable flag participates in the edge term, which reproduces
// the extra increment real hardware performs when the timer is
// disabled while the selected bit is high.
func (c *Controller) detectEdge() {
	newBit := c.enabled && c.div&c.currentBit != 0

	if c.lastBit && !newBit {
		c.tima++
		if c.tima == 0 {
			c.overflow = true
			c.ticksSinceOverflow = 0
		}
	}

	c.lastBit = newBit
}

// Read returns the value of the timer register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.div >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0xF8
	}
	return 0xFF
}

// Write writes to the timer register at the given address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// writing DIV resets the whole internal divider, which may
		// itself produce a falling edge
		c.div = 0
		c.detectEdge()
	case types.TIMA:
		// writes are ignored on the exact tick TIMA reloads
		if c.ticksSinceOverflow != 5 {
			c.tima = value
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	case types.TMA:
		c.tma = value
		// a write landing on the reload tick is forwarded to TIMA
		if c.ticksSinceOverflow == 5 {
			c.tima = value
		}
	case types.TAC:
		c.tac = value | 0xF8
		c.currentBit = bits[value&0b11]
		c.enabled = value&types.Bit2 != 0
		c.detectEdge()
	}
}
