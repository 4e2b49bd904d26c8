package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register, used to
	// select and read the joypad input lines.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register, holding
	// the byte being transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register, which
	// controls the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// it is the upper byte of a 16-bit counter that increments every
	// tick; writing any value resets the whole counter.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. It is
	// incremented at the rate selected by TAC, and reloaded from
	// TMA when it overflows, requesting a timer interrupt.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register, the value
	// loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register, which
	// enables the timer and selects its frequency.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register, holding the
	// pending interrupt flags.
	//
	//	Bit 0: V-Blank Interrupt Request (INT 40h)
	//	Bit 1: LCD STAT Interrupt Request (INT 48h)
	//	Bit 2: Timer Interrupt Request (INT 50h)
	//	Bit 3: Serial Interrupt Request (INT 58h)
	//	Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCDC hardware register, the LCD
	// control flags.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register, the LCD
	// status flags. Bit 7 is unused and always reads as 1.
	STAT HardwareAddress = 0xFF41
	// DMA is the address of the DMA hardware register. Writing a
	// value starts a transfer of 160 bytes from value<<8 to OAM.
	DMA HardwareAddress = 0xFF46
	// IE is the address of the IE hardware register, the interrupt
	// enable mask. It shares the bit layout of IF.
	IE HardwareAddress = 0xFFFF
)
