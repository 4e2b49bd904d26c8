package cartridge

// mbc1 implements the MBC1 mapper: up to 2MiB of ROM in 16KiB banks
// and up to 32KiB of banked external RAM.
type mbc1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    uint32
	ramEnabled bool

	// advanced banking mode redirects the upper bank bits to RAM
	// banking instead of ROM banking
	advanced bool

	header Header
}

func newMBC1(rom []byte, header Header) *mbc1 {
	return &mbc1{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		header:  header,
	}
}

func (m *mbc1) Header() Header {
	return m.header
}

// Read returns the value from the cartridge ROM or RAM, depending on
// the selected banks. Reads from disabled RAM return 0xFF.
func (m *mbc1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // bank 0 is fixed
	case address < 0x8000:
		offset := uint32(address-0x4000) + m.romBank*0x4000
		return m.rom[offset%uint32(len(m.rom))]
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			offset := uint32(address-0xA000) + m.ramBank*0x2000
			return m.ram[offset%uint32(len(m.ram))]
		}
	}
	return 0xFF
}

// Write switches banks or writes to external RAM; ROM contents are
// never modified.
func (m *mbc1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number, lower 5 bits; bank 0 selects bank 1
		bank := uint32(value & 0x1F)
		if bank == 0 {
			bank = 1
		}
		m.romBank = m.romBank&0x60 | bank
	case address < 0x6000:
		if m.advanced {
			m.ramBank = uint32(value & 0x03)
		} else {
			m.romBank = m.romBank&0x1F | uint32(value&0x03)<<5
		}
	case address < 0x8000:
		m.advanced = value&0x01 == 0x01
		if !m.advanced {
			m.ramBank = 0
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			offset := uint32(address-0xA000) + m.ramBank*0x2000
			m.ram[offset%uint32(len(m.ram))] = value
		}
	}
}
