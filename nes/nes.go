// Package nes wires the CPU, PPU, bus, cartridge and controllers
// together into a runnable system and exposes the small Core API a host
// program drives: power on, reset, load a ROM, and step one frame at a
// time.
package nes

import (
	"log"

	"github.com/aperez/nescore/bus"
	"github.com/aperez/nescore/cartridge"
	"github.com/aperez/nescore/controller"
	"github.com/aperez/nescore/cpu"
	"github.com/aperez/nescore/ppu"
)

// CyclesPerFrame is the CPU-cycle budget StepFrame runs until exhausted,
// matching one NTSC video frame (262 scanlines * 341 dots / 3 dots per
// CPU cycle).
const CyclesPerFrame = 29780

// DiagFunc receives diagnostic events (UnknownOpcode, UnmappedAccess)
// absorbed by the core rather than surfaced as Go errors.
type DiagFunc func(kind, format string, args ...any)

func logDiag(kind, format string, args ...any) {
	if kind == "UnmappedAccess" {
		return // debug-verbosity event: not logged by the default sink
	}
	log.Printf("["+kind+"] "+format, args...)
}

// Config configures a new System.
type Config struct {
	// Diag receives diagnostic callbacks. Defaults to a log.Printf sink
	// that drops UnmappedAccess events.
	Diag DiagFunc
}

// System is a complete NES: CPU, PPU, bus, cartridge slot and two
// controller ports.
type System struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	Bus  *bus.Bus
	Cart *cartridge.Cartridge
	Pad1 controller.Port
	Pad2 controller.Port

	diag DiagFunc
}

// New constructs a System with no cartridge loaded; call LoadROM before
// PowerOn to run anything.
func New(cfg Config) *System {
	diag := cfg.Diag
	if diag == nil {
		diag = logDiag
	}
	p := ppu.New()
	b := bus.New(bus.DiagFunc(diag))
	b.PPU = p
	pad1, pad2 := controller.New(), controller.New()
	b.Pad1, b.Pad2 = pad1, pad2

	s := &System{
		PPU:  p,
		Bus:  b,
		Pad1: pad1,
		Pad2: pad2,
		diag: diag,
	}

	c, err := cpu.Init(&cpu.ChipDef{
		Ram:  b,
		Nmi:  p,
		Diag: cpu.DiagFunc(diag),
	})
	if err != nil {
		// Init only fails on a nil Ram, which cannot happen here.
		panic(err)
	}
	s.CPU = c
	return s
}

// LoadROM parses an iNES image and attaches it to the bus and PPU.
func (s *System) LoadROM(data []uint8) error {
	cart, err := cartridge.LoadINES(data)
	if err != nil {
		return err
	}
	s.Cart = cart
	s.Bus.Cart = cart
	s.PPU.Cart = cart
	switch cart.Mirroring {
	case cartridge.MirrorHorizontal:
		s.PPU.Mirror = ppu.MirrorHorizontal
	case cartridge.MirrorVertical:
		s.PPU.Mirror = ppu.MirrorVertical
	default:
		s.PPU.Mirror = ppu.MirrorFourScreen
	}
	return nil
}

// PowerOn resets RAM, the PPU and the CPU to their cold-boot state.
func (s *System) PowerOn() {
	s.Bus.PowerOn()
	s.PPU.PowerOn()
	s.CPU.PowerOn()
}

// Reset applies the CPU RESET sequence without touching RAM contents.
func (s *System) Reset() {
	s.CPU.Reset()
}

// SetController updates the live button state for port 1 or 2 (1-indexed,
// matching the two physical controller ports on the console).
func (s *System) SetController(port int, buttons uint8) {
	switch port {
	case 1:
		s.Pad1.SetState(buttons)
	case 2:
		s.Pad2.SetState(buttons)
	}
}

// FrameBuffer returns the most recent frame's pixel palette indices. See
// ppu.PPU.FrameBuffer for the rendering-pipeline caveat.
func (s *System) FrameBuffer() []uint8 {
	return s.PPU.FrameBuffer()
}

// StepFrame runs CPU instructions, ticking the PPU 3 dots per CPU cycle
// consumed (including OAM DMA stall cycles), until at least one frame's
// worth of CPU cycles has elapsed, and returns the number of CPU cycles
// actually consumed.
func (s *System) StepFrame() (int, error) {
	consumed := 0
	for consumed < CyclesPerFrame {
		n, err := s.CPU.Step()
		if err != nil {
			return consumed, err
		}
		n += s.Bus.TakeDMAStall()
		s.Bus.AdvanceCycles(n)
		for i := 0; i < n*3; i++ {
			s.PPU.Tick()
		}
		consumed += n
	}
	return consumed, nil
}
