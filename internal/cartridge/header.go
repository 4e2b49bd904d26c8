package cartridge

import (
	"fmt"
	"strings"
)

// Type identifies the mapper hardware declared by the cartridge
// header at 0x0147.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBATT:
		return "MBC1+RAM+BATT"
	}
	return fmt.Sprintf("UNKNOWN(%02X)", uint8(t))
}

var ramSizes = map[uint8]uint32{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the cartridge header located at 0x0100-0x014F.
// It describes the game and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game.
	Title string
	// 0x0147 - mapper hardware of the cartridge.
	CartridgeType Type
	// 0x0148 - size of the ROM, decoded to bytes.
	ROMSize uint32
	// 0x0149 - size of the external RAM, decoded to bytes.
	RAMSize uint32
	// 0x014D - checksum of the header bytes 0x0134-0x014C.
	HeaderChecksum uint8
}

func (h Header) String() string {
	return fmt.Sprintf("%s (%s, ROM %dKiB, RAM %dKiB)", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}

// parseHeader decodes the 0x50 header bytes starting at 0x0100.
func parseHeader(raw []byte) Header {
	h := Header{}

	// the title is zero padded to 16 bytes
	h.Title = strings.TrimRight(string(raw[0x34:0x44]), "\x00")
	h.CartridgeType = Type(raw[0x47])
	h.ROMSize = 32 * 1024 << raw[0x48]
	h.RAMSize = ramSizes[raw[0x49]]
	h.HeaderChecksum = raw[0x4D]

	return h
}
