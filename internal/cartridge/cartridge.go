// Package cartridge provides the Cartridge interface for the DMG.
// The cartridge holds the game ROM and any external RAM; bank
// switching is performed by writing to the ROM address space.
package cartridge

import (
	"github.com/pkg/errors"
)

// MinROMSize is the smallest ROM image that still contains a full
// header (two 16KiB banks).
const MinROMSize = 0x8000

// Cartridge represents a game cartridge mapped at 0x0000-0x7FFF
// (ROM) and 0xA000-0xBFFF (external RAM).
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
}

// New parses the header of the given ROM image and returns a
// Cartridge of the declared mapper type.
func New(rom []byte) (Cartridge, error) {
	if len(rom) < MinROMSize {
		return nil, errors.Errorf("cartridge: ROM too small: %d bytes", len(rom))
	}
	header := parseHeader(rom[0x100:0x150])

	switch header.CartridgeType {
	case ROM:
		return &romCartridge{rom: rom, header: header}, nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMBC1(rom, header), nil
	}

	return nil, errors.Errorf("cartridge: unsupported mapper %s", header.CartridgeType)
}

// romCartridge is a plain 32KiB cartridge with no mapper hardware.
type romCartridge struct {
	rom    []byte
	header Header
}

func (c *romCartridge) Header() Header {
	return c.header
}

func (c *romCartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

func (c *romCartridge) Write(address uint16, value uint8) {}
