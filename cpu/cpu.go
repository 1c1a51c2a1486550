// Package cpu implements the Ricoh 2A03 (a MOS 6502 without decimal-mode
// arithmetic), the CPU at the heart of the NES. It provides the register
// file, status flags, stack discipline, interrupt sequencing and the full
// official opcode table needed to run 6502 machine code against a
// memory.Bank.
package cpu

import (
	"fmt"

	"github.com/aperez/nescore/irq"
	"github.com/aperez/nescore/memory"
)

// Status flag bits, in P.
const (
	FlagC = uint8(0x01) // Carry
	FlagZ = uint8(0x02) // Zero
	FlagI = uint8(0x04) // Interrupt disable
	FlagD = uint8(0x08) // Decimal (honored as a flag, ignored in arithmetic on the 2A03)
	FlagB = uint8(0x10) // Break (only meaningful as pushed onto the stack)
	FlagU = uint8(0x20) // Unused, always reads as 1
	FlagV = uint8(0x40) // Overflow
	FlagN = uint8(0x80) // Negative
)

// Interrupt vectors.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// InvalidCPUState indicates a construction-time defect (Init returns it
// for a ChipDef with a nil Ram) as opposed to malformed guest code, which
// the core absorbs per spec.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// UnknownOpcode describes an opcode byte with no table entry. It is never
// returned as a Go error; Step reports it through DiagFunc and otherwise
// leaves CPU state untouched, matching real silicon's undefined-opcode
// behavior being out of scope for this core.
type UnknownOpcode struct {
	PC     uint16
	Opcode uint8
}

func (e UnknownOpcode) String() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// DiagFunc receives diagnostic events (UnknownOpcode, UnmappedAccess, ...)
// that the core absorbs rather than surfaces as errors. kind is a short
// stable tag ("UnknownOpcode"); format/args are printf-style.
type DiagFunc func(kind, format string, args ...any)

func noopDiag(string, string, ...any) {}

// ChipDef configures a new CPU.
type ChipDef struct {
	// Ram is the bus this CPU executes against.
	Ram memory.Bank
	// Irq is an optional IRQ line source, sampled at each instruction boundary.
	Irq irq.Sender
	// Nmi is an optional NMI line source. Edge-triggered: a rising edge
	// while the CPU is running is latched and serviced at the next
	// instruction boundary, then cleared.
	Nmi irq.Sender
	// Diag receives diagnostic callbacks for absorbed anomalies. If nil a
	// no-op sink is installed.
	Diag DiagFunc
}

// CPU is a Ricoh 2A03 register file plus the decode/dispatch machinery
// needed to execute 6502 machine code one instruction at a time.
type CPU struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	bus  memory.Bank
	irq  irq.Sender
	nmi  irq.Sender
	diag DiagFunc

	nmiLastRaised bool // for edge detection
	nmiLatched    bool // latched pending NMI, cleared on service
}

// Init constructs a powered-on CPU.
func Init(def *ChipDef) (*CPU, error) {
	if def.Ram == nil {
		return nil, InvalidCPUState{"ChipDef.Ram must not be nil"}
	}
	c := &CPU{
		bus:  def.Ram,
		irq:  def.Irq,
		nmi:  def.Nmi,
		diag: def.Diag,
	}
	if c.diag == nil {
		c.diag = noopDiag
	}
	c.PowerOn()
	return c, nil
}

// PowerOn resets the CPU the same as Reset but additionally zeroes the
// general-purpose registers, matching power-on as RESET plus zeroed
// registers (RAM zeroing is the caller's responsibility via bus.PowerOn).
func (c *CPU) PowerOn() {
	c.A, c.X, c.Y = 0, 0, 0
	c.Reset()
}

// Reset applies the RESET sequence: SP <- 0xFD, flags I=1 U=1 (other flags
// untouched), PC loaded from the reset vector. This does not push any
// state onto the stack.
func (c *CPU) Reset() {
	c.S = 0xFD
	c.P |= FlagI | FlagU
	c.PC = c.readVector(ResetVector)
	c.nmiLastRaised = false
	c.nmiLatched = false
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) pushStack(val uint8) {
	c.bus.Write(0x0100+uint16(c.S), val)
	c.S--
}

func (c *CPU) popStack() uint8 {
	c.S++
	return c.bus.Read(0x0100 + uint16(c.S))
}

func (c *CPU) setFlag(flag uint8, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) flag(flag uint8) bool {
	return c.P&flag != 0
}

func (c *CPU) zeroCheck(v uint8) { c.setFlag(FlagZ, v == 0) }
func (c *CPU) negCheck(v uint8)  { c.setFlag(FlagN, v&0x80 != 0) }
func (c *CPU) nz(v uint8) {
	c.zeroCheck(v)
	c.negCheck(v)
}

// pollNMI latches a rising edge on the NMI line. Must be called exactly
// once per instruction boundary so a pulse isn't missed or double-counted.
func (c *CPU) pollNMI() {
	if c.nmi == nil {
		return
	}
	raised := c.nmi.Raised()
	if raised && !c.nmiLastRaised {
		c.nmiLatched = true
	}
	c.nmiLastRaised = raised
}

// Step executes exactly one instruction, servicing a pending interrupt
// first if one is latched, and returns the number of CPU cycles consumed.
// Unknown opcodes are reported via Diag, consume one cycle, advance PC
// past the opcode byte, and otherwise leave CPU state unchanged.
func (c *CPU) Step() (int, error) {
	c.pollNMI()

	if c.nmiLatched {
		c.nmiLatched = false
		c.serviceInterrupt(NMIVector, false)
		return 7, nil
	}
	if c.irq != nil && c.irq.Raised() && !c.flag(FlagI) {
		c.serviceInterrupt(IRQVector, false)
		return 7, nil
	}

	pc := c.PC
	op := c.bus.Read(c.PC)
	c.PC++

	entry := &opcodeTable[op]
	if entry.exec == nil {
		c.diag("UnknownOpcode", "%s", UnknownOpcode{PC: pc, Opcode: op})
		return 1, nil
	}

	am := c.resolveMode(entry.mode)
	extra, err := entry.exec(c, &am)
	if err != nil {
		return entry.cycles, err
	}

	cycles := entry.cycles + extra
	if entry.pageCrossOK && am.crossed {
		cycles++
	}
	return cycles, nil
}

// serviceInterrupt pushes PC/flags and vectors PC to addr. isBRK controls
// whether the pushed flags carry B=1 (software BRK) or B=0 (hardware
// IRQ/NMI), and whether PC is advanced past a signature byte first.
func (c *CPU) serviceInterrupt(addr uint16, isBRK bool) {
	if isBRK {
		c.PC++
	}
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	push := c.P | FlagU
	if isBRK {
		push |= FlagB
	} else {
		push &^= FlagB
	}
	c.pushStack(push)
	c.setFlag(FlagI, true)
	c.PC = c.readVector(addr)
}
