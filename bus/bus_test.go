package bus

import (
	"testing"

	"github.com/aperez/nescore/controller"
	"github.com/aperez/nescore/ppu"
)

func TestRAMMirroring(t *testing.T) {
	b := New(nil)
	b.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Errorf("Read(0x%04X) = 0x%02X, want 0x42", mirror, got)
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := New(nil)
	b.PPU = ppu.New()
	b.Write(0x2000, 0x80) // PPUCTRL
	b.Write(0x2008, 0x00) // mirrors $2000, clears it back out
	if b.PPU.Ctrl != 0 {
		t.Errorf("Ctrl = 0x%02X, want 0 (write through the $2008 mirror)", b.PPU.Ctrl)
	}
}

func TestControllerStrobe(t *testing.T) {
	b := New(nil)
	b.Pad1 = controller.New()
	b.Pad1.SetState(controller.ButtonA)
	b.Write(0x4016, 1)
	b.Write(0x4016, 0)
	if got := b.Read(0x4016); got&0x01 != 1 {
		t.Errorf("first read bit = %d, want 1 (button A)", got&0x01)
	}
}

func TestOAMDMAStallParity(t *testing.T) {
	b := New(nil)
	b.PPU = ppu.New()
	b.AdvanceCycles(1) // make cycles odd
	b.Write(0x4014, 0x02)
	if got := b.TakeDMAStall(); got != 514 {
		t.Errorf("stall = %d, want 514 on an odd starting cycle", got)
	}

	b2 := New(nil)
	b2.PPU = ppu.New()
	b2.Write(0x4014, 0x02)
	if got := b2.TakeDMAStall(); got != 513 {
		t.Errorf("stall = %d, want 513 on an even starting cycle", got)
	}
}

func TestOAMDMACopiesPage(t *testing.T) {
	b := New(nil)
	b.PPU = ppu.New()
	b.Write(0x0200, 0x11)
	b.Write(0x0201, 0x22)
	b.Write(0x4014, 0x02) // page $02 = $0200-$02FF
	if b.PPU.OAM[0] != 0x11 || b.PPU.OAM[1] != 0x22 {
		t.Errorf("OAM[0:2] = [0x%02X 0x%02X], want [0x11 0x22]", b.PPU.OAM[0], b.PPU.OAM[1])
	}
}
