// Package interrupts implements the interrupt controller of the
// Game Boy: the pending-flag register (IF), the enable mask (IE),
// the master enable latch (IME) and the fixed-priority vectoring
// used when an interrupt is accepted.
package interrupts

import (
	"github.com/dmgb/dmgb/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested
	// every time the picture pipeline enters VBlank.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1), requested
	// by the picture pipeline when a STAT condition is met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested
	// when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested
	// when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested
	// when an input line goes low.
	JoypadFlag = types.Bit4
)

// Service is the interrupt service. Peripherals request interrupts
// by setting bits in the Flag register; software enables them via
// the Enable register and the IME latch. When a flag is both pending
// and enabled, and IME is set, the CPU services the highest-priority
// source and the corresponding Flag bit is cleared.
type Service struct {
	Flag   uint8 // pending interrupts (types.IF)
	Enable uint8 // enabled interrupts (types.IE)

	// IME is the interrupt master enable latch. It is cleared when
	// an interrupt is accepted and set by the EI and RETI
	// instructions.
	IME bool
}

// NewService returns a new Service with all sources disabled.
func NewService() *Service {
	return &Service{}
}

// HasPending reports whether any interrupt is both requested and
// enabled, regardless of the IME latch.
func (s *Service) HasPending() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// ReadFlag returns the value software observes when reading the IF
// register; the upper 3 bits are always set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag sets the IF register. Only the lower 5 bits are stored.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F
}

// Vector returns the vector address of the highest-priority
// interrupt that is both requested and enabled, clearing its Flag
// bit, or 0 if no such interrupt exists. VBlank (bit 0) has the
// highest priority, Joypad (bit 4) the lowest; exactly one source
// is accepted per call.
func (s *Service) Vector() uint16 {
	if !s.HasPending() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}
