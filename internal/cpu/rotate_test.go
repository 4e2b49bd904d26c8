package cpu

import "testing"

func TestRotateAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		opcode  byte
		a       uint8
		carryIn bool
		wantA   uint8
		wantF   uint8
	}{
		{"rlca", 0x07, 0x85, false, 0x0B, flagCarry},
		{"rlca no carry", 0x07, 0x01, false, 0x02, 0},
		{"rrca", 0x0F, 0x01, false, 0x80, flagCarry},
		{"rla shifts carry in", 0x17, 0x80, true, 0x01, flagCarry},
		{"rla without carry", 0x17, 0x80, false, 0x00, flagCarry},
		{"rra shifts carry in", 0x1F, 0x01, true, 0x80, flagCarry},
		// the accumulator rotates clear the zero flag even when the
		// result is zero
		{"zero result leaves zero flag clear", 0x07, 0x00, false, 0x00, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.opcode)
			c.A = tt.a
			c.F = flagZero
			if tt.carryIn {
				c.F |= flagCarry
			}

			step(t, c)

			if c.A != tt.wantA {
				t.Errorf("A = %02X, want %02X", c.A, tt.wantA)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %02X, want %02X", c.F, tt.wantF)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name    string
		opcode  byte // CB-prefixed, operating on B
		b       uint8
		carryIn bool
		wantB   uint8
		wantF   uint8
	}{
		{"rlc", 0x00, 0x85, false, 0x0B, flagCarry},
		{"rlc zero", 0x00, 0x00, false, 0x00, flagZero},
		{"rrc", 0x08, 0x01, false, 0x80, flagCarry},
		{"rl", 0x10, 0x80, true, 0x01, flagCarry},
		{"rr", 0x18, 0x01, false, 0x00, flagZero | flagCarry},
		{"sla", 0x20, 0xC0, false, 0x80, flagCarry},
		{"sra keeps sign", 0x28, 0x81, false, 0xC0, flagCarry},
		{"srl drops sign", 0x38, 0x81, false, 0x40, flagCarry},
		{"swap", 0x30, 0xA5, false, 0x5A, 0},
		{"swap clears carry", 0x30, 0x0F, true, 0xF0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(0xCB, tt.opcode)
			c.B = tt.b
			c.F = 0
			if tt.carryIn {
				c.F = flagCarry
			}

			step(t, c)

			if c.B != tt.wantB {
				t.Errorf("B = %02X, want %02X", c.B, tt.wantB)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %02X, want %02X", c.F, tt.wantF)
			}
		})
	}
}

func TestBitResSet(t *testing.T) {
	t.Run("bit set", func(t *testing.T) {
		c, _ := newTestCPU(0xCB, 0x78) // BIT 7, B
		c.B = 0x80
		c.F = flagCarry

		step(t, c)

		// zero clear, half carry set, carry untouched
		if c.F != flagHalfCarry|flagCarry {
			t.Errorf("F = %02X, want %02X", c.F, flagHalfCarry|flagCarry)
		}
		if c.B != 0x80 {
			t.Errorf("B = %02X, BIT must not modify its operand", c.B)
		}
	})

	t.Run("bit clear", func(t *testing.T) {
		c, _ := newTestCPU(0xCB, 0x40) // BIT 0, B
		c.B = 0xFE
		c.F = 0

		step(t, c)

		if c.F != flagZero|flagHalfCarry {
			t.Errorf("F = %02X, want %02X", c.F, flagZero|flagHalfCarry)
		}
	})

	t.Run("res and set", func(t *testing.T) {
		c, _ := newTestCPU(0xCB, 0xBF, 0xCB, 0xC7) // RES 7, A; SET 0, A
		c.A = 0xFF

		step(t, c)
		if c.A != 0x7F {
			t.Errorf("A = %02X after RES 7, want 7F", c.A)
		}

		c.A = 0x00
		step(t, c)
		if c.A != 0x01 {
			t.Errorf("A = %02X after SET 0, want 01", c.A)
		}
	})

	t.Run("set through hl", func(t *testing.T) {
		c, b := newTestCPU(0xCB, 0xFE) // SET 7, (HL)
		c.HL.SetUint16(0xD000)
		b.mem[0xD000] = 0x01

		step(t, c)

		if b.mem[0xD000] != 0x81 {
			t.Errorf("(HL) = %02X, want 81", b.mem[0xD000])
		}
	})
}
