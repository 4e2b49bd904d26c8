package cpu

// pushWord pushes a 16-bit value onto the stack, high byte first,
// decrementing SP before each byte.
func (c *CPU) pushWord(value uint16) {
	c.SP--
	c.b.ClockedWrite(c.SP, uint8(value>>8))
	c.SP--
	c.b.ClockedWrite(c.SP, uint8(value))
}

// popWord pops a 16-bit value off the stack, low byte first,
// incrementing SP after each byte. popWord(pushWord(x)) is the
// identity and restores SP.
func (c *CPU) popWord() uint16 {
	low := c.b.ClockedRead(c.SP)
	c.SP++
	high := c.b.ClockedRead(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}
