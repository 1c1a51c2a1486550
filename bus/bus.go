// Package bus wires the CPU's 16-bit address space together: 2KiB of
// internal RAm mirrored four times, the PPU's 8 registers mirrored every
// 8 bytes, the standard controller ports, OAM DMA, and the cartridge's
// PRG space. It implements memory.Bank so a cpu.CPU can run against it
// directly.
package bus

import (
	"fmt"

	"github.com/aperez/nescore/cartridge"
	"github.com/aperez/nescore/controller"
	"github.com/aperez/nescore/ppu"
)

// UnmappedAccess is reported via Diag when a read or write lands in a
// region with nothing wired to it (disabled APU/IO test range, or a
// cartridge access before a ROM is loaded).
type UnmappedAccess struct {
	Addr uint16
	Kind string // "read" or "write"
}

func (e UnmappedAccess) Error() string {
	return fmt.Sprintf("unmapped %s at 0x%04X", e.Kind, e.Addr)
}

// DiagFunc receives diagnostic callbacks for absorbed bus anomalies.
type DiagFunc func(kind, format string, args ...any)

func noopDiag(string, string, ...any) {}

// Bus is the NES CPU memory map.
type Bus struct {
	ram  [0x0800]uint8
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
	Pad1 controller.Port
	Pad2 controller.Port
	diag DiagFunc

	cycles uint64 // running CPU cycle count, for OAM DMA parity

	// dmaStall accumulates cycles the CPU must burn servicing an OAM DMA
	// transfer triggered by a write to $4014; the clock coordinator
	// drains it after each instruction.
	dmaStall int
}

// New builds a bus with the given diagnostic sink (nil installs a no-op).
func New(diag DiagFunc) *Bus {
	if diag == nil {
		diag = noopDiag
	}
	return &Bus{diag: diag}
}

// PowerOn zeroes RAM and resets the PPU. Matches memory.Bank.
func (b *Bus) PowerOn() {
	for i := range b.ram {
		b.ram[i] = 0
	}
	if b.PPU != nil {
		b.PPU.PowerOn()
	}
}

// AdvanceCycles tells the bus how many CPU cycles just elapsed, so OAM
// DMA stall parity can be computed correctly.
func (b *Bus) AdvanceCycles(n int) {
	b.cycles += uint64(n)
}

// TakeDMAStall returns and clears any CPU cycles owed for a pending OAM
// DMA transfer triggered since the last call.
func (b *Bus) TakeDMAStall() int {
	s := b.dmaStall
	b.dmaStall = 0
	return s
}

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		if b.PPU == nil {
			b.diag("UnmappedAccess", "PPU register read at 0x%04X with no PPU attached", addr)
			return 0
		}
		return b.PPU.ReadRegister(uint8((addr - 0x2000) % 8))
	case addr == 0x4016:
		if b.Pad1 == nil {
			return 0
		}
		return b.Pad1.Read()
	case addr == 0x4017:
		if b.Pad2 == nil {
			return 0
		}
		return b.Pad2.Read()
	case addr < 0x4018:
		return 0 // APU/IO registers: not modeled, reads as open bus zero
	case addr < 0x4020:
		b.diag("UnmappedAccess", "read from disabled APU/IO test range at 0x%04X", addr)
		return 0
	default:
		if b.Cart == nil {
			b.diag("UnmappedAccess", "cartridge read at 0x%04X with no cartridge loaded", addr)
			return 0
		}
		return b.Cart.CPURead(addr)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = val
	case addr < 0x4000:
		if b.PPU == nil {
			b.diag("UnmappedAccess", "PPU register write at 0x%04X with no PPU attached", addr)
			return
		}
		b.PPU.WriteRegister(uint8((addr-0x2000)%8), val)
	case addr == 0x4014:
		b.triggerOAMDMA(val)
	case addr == 0x4016:
		if b.Pad1 != nil {
			b.Pad1.Write(val)
		}
		if b.Pad2 != nil {
			b.Pad2.Write(val)
		}
	case addr < 0x4018:
		// APU registers: accepted and ignored, audio generation is out of scope.
	case addr < 0x4020:
		b.diag("UnmappedAccess", "write to disabled APU/IO test range at 0x%04X", addr)
	default:
		if b.Cart == nil {
			b.diag("UnmappedAccess", "cartridge write at 0x%04X with no cartridge loaded", addr)
			return
		}
		b.Cart.CPUWrite(addr, val)
	}
}

// triggerOAMDMA copies the 256-byte page starting at page<<8 into OAM and
// schedules the CPU stall the transfer costs: 513 cycles, or 514 if it
// starts on an odd CPU cycle.
func (b *Bus) triggerOAMDMA(page uint8) {
	var data [256]uint8
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data[i] = b.Read(base + uint16(i))
	}
	if b.PPU != nil {
		b.PPU.DMAWrite(data)
	}
	stall := 513
	if b.cycles%2 == 1 {
		stall = 514
	}
	b.dmaStall += stall
}
