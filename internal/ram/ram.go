// Package ram provides a basic RAM implementation.
package ram

// RAM represents a fixed-size block of RAM. Addresses are
// relative to the start of the block.
type RAM struct {
	data []uint8
}

// New returns a new RAM block of the given size.
func New(size uint16) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}
