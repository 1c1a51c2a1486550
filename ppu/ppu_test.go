package ppu

import "testing"

func tickN(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestVBlankSetAndNMIRaised(t *testing.T) {
	p := New()
	p.Ctrl = CtrlNMIEnable
	dotsToVBlank := vblankStartScanline*dotsPerScanline + 1
	tickN(p, dotsToVBlank)
	if p.Status&StatusVBlank == 0 {
		t.Fatal("VBlank flag not set")
	}
	if !p.Raised() {
		t.Fatal("NMI line should be raised during VBlank with NMI enabled")
	}
}

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.w = true
	p.Status = StatusVBlank
	val := p.ReadRegister(2)
	if val&StatusVBlank == 0 {
		t.Error("read should return the flag as it was before clearing")
	}
	if p.Status&StatusVBlank != 0 {
		t.Error("reading PPUSTATUS should clear VBlank")
	}
	if p.w {
		t.Error("reading PPUSTATUS should reset the write latch")
	}
}

func TestPreRenderClearsFlags(t *testing.T) {
	p := New()
	p.Status = StatusVBlank | StatusSprite0Hit | StatusSpriteOverflow
	p.Scanline = preRenderScanline
	p.Dot = 0
	p.Tick() // lands on dot 1 of the pre-render line
	if p.Status != 0 {
		t.Errorf("status = 0x%02X, want 0 after pre-render clear", p.Status)
	}
}

func TestOAMDataReadWrite(t *testing.T) {
	p := New()
	p.WriteRegister(3, 0x10) // OAMADDR
	p.WriteRegister(4, 0x42) // OAMDATA
	if p.OAM[0x10] != 0x42 {
		t.Errorf("OAM[0x10] = 0x%02X, want 0x42", p.OAM[0x10])
	}
	p.WriteRegister(3, 0x10)
	if got := p.ReadRegister(4); got != 0x42 {
		t.Errorf("OAMDATA read = 0x%02X, want 0x42", got)
	}
}

func TestDataReadIsBufferedOneDeep(t *testing.T) {
	p := New()
	p.nametables[0][0] = 0xAB
	p.nametables[0][1] = 0xCD
	p.WriteRegister(6, 0x20) // PPUADDR high
	p.WriteRegister(6, 0x00) // PPUADDR low -> v = 0x2000
	first := p.ReadRegister(7)
	if first != 0 {
		t.Errorf("first buffered read = 0x%02X, want 0 (stale buffer)", first)
	}
	second := p.ReadRegister(7)
	if second != 0xAB {
		t.Errorf("second read = 0x%02X, want 0xAB", second)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := New()
	p.writePalette(0x3F00, 0x11)
	if got := p.readPalette(0x3F10); got != 0x11 {
		t.Errorf("$3F10 = 0x%02X, want 0x11 (mirrors $3F00)", got)
	}
}

func TestDMAWriteLoadsFullPage(t *testing.T) {
	p := New()
	var page [256]uint8
	for i := range page {
		page[i] = uint8(i)
	}
	p.DMAWrite(page)
	for i := range page {
		if p.OAM[i] != uint8(i) {
			t.Fatalf("OAM[%d] = %d, want %d", i, p.OAM[i], i)
		}
	}
}
