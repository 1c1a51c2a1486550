package cpu

// AddrMode identifies one of the 6502's addressing modes.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeRelative
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
)

// addrResult carries whatever an addressing mode resolved: the byte found
// there (for read/modify instructions), the effective address (for
// writes, jumps and RMW write-back), and whether the effective address
// crossed a page boundary from its unindexed base (for the page-cross
// cycle penalty indexed loads incur but stores and RMW never do; branches
// compute their own page-cross cost and do not use it).
type addrResult struct {
	addr    uint16
	value   uint8
	crossed bool
}

// resolveMode fetches operand bytes for mode, advancing PC past them, and
// returns the resolved address/value. Every mode is resolved in a single
// call: the core is instruction-granular, not tick-granular.
func (c *CPU) resolveMode(mode AddrMode) addrResult {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return addrResult{}

	case ModeImmediate:
		v := c.bus.Read(c.PC)
		c.PC++
		return addrResult{value: v}

	case ModeZeroPage:
		zp := c.bus.Read(c.PC)
		c.PC++
		addr := uint16(zp)
		return addrResult{addr: addr, value: c.bus.Read(addr)}

	case ModeZeroPageX:
		zp := c.bus.Read(c.PC)
		c.PC++
		addr := uint16(zp + c.X)
		return addrResult{addr: addr, value: c.bus.Read(addr)}

	case ModeZeroPageY:
		zp := c.bus.Read(c.PC)
		c.PC++
		addr := uint16(zp + c.Y)
		return addrResult{addr: addr, value: c.bus.Read(addr)}

	case ModeRelative:
		off := c.bus.Read(c.PC)
		c.PC++
		target := c.PC + uint16(int8(off))
		return addrResult{addr: target}

	case ModeAbsolute:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		addr := uint16(lo) | uint16(hi)<<8
		return addrResult{addr: addr, value: c.bus.Read(addr)}

	case ModeAbsoluteX:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.X)
		return addrResult{addr: addr, value: c.bus.Read(addr), crossed: (base & 0xFF00) != (addr & 0xFF00)}

	case ModeAbsoluteY:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		return addrResult{addr: addr, value: c.bus.Read(addr), crossed: (base & 0xFF00) != (addr & 0xFF00)}

	case ModeIndirect:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		ptr := uint16(lo) | uint16(hi)<<8
		// Famous 6502 page-boundary bug: the high byte is fetched from
		// ptr with its low byte wrapped within the same page, not ptr+1.
		rlo := c.bus.Read(ptr)
		rhi := c.bus.Read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		addr := uint16(rlo) | uint16(rhi)<<8
		return addrResult{addr: addr}

	case ModeIndirectX:
		zp := c.bus.Read(c.PC)
		c.PC++
		base := zp + c.X
		lo := c.bus.Read(uint16(base))
		hi := c.bus.Read(uint16(base + 1))
		addr := uint16(lo) | uint16(hi)<<8
		return addrResult{addr: addr, value: c.bus.Read(addr)}

	case ModeIndirectY:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		return addrResult{addr: addr, value: c.bus.Read(addr), crossed: (base & 0xFF00) != (addr & 0xFF00)}
	}

	return addrResult{}
}
