// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated has specific mappings (including shadowed
// regions) this is defined as an interface.
package memory

import (
	"math/rand"
	"time"
)

// Bank is a readable/writable/power-on-able block of storage. A larger
// memory map (a Bus) is built by dispatching addresses to one or more
// Banks after applying whatever mirroring that map requires.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// ram implements a standard R/W interface to an address space for 8 bit systems.
// If this is mapped into a larger memory map it's up to a parent Bank to properly mask addr
// before calling Read/Write.
type ram struct {
	mem []uint8
}

// NewRAMBank creates a R/W RAM bank of the given size. Size must be a power of 2
// so addresses beyond the bank alias correctly via masking.
func NewRAMBank(size int) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, InvalidSize{size}
	}
	return &ram{mem: make([]uint8, size)}, nil
}

// InvalidSize is returned by NewRAMBank when size isn't a power of 2.
type InvalidSize struct {
	Size int
}

func (e InvalidSize) Error() string {
	return "invalid size: must be a power of 2"
}

// Read implements the interface for Bank. Address is clipped based on length of ram buffer.
func (r *ram) Read(addr uint16) uint8 {
	return r.mem[int(addr)&(len(r.mem)-1)]
}

// Write implements the interface for Bank. Address is clipped based on length of ram buffer.
func (r *ram) Write(addr uint16, val uint8) {
	r.mem[int(addr)&(len(r.mem)-1)] = val
}

// PowerOn implements the interface for memory.Bank and randomizes the RAM,
// matching real hardware's undefined power-on contents.
func (r *ram) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}
