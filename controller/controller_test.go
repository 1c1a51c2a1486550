package controller

import "testing"

func TestShiftOrder(t *testing.T) {
	p := New()
	p.SetState(ButtonA | ButtonStart)
	p.Write(1) // strobe high, latches
	p.Write(0) // strobe low, begin shifting

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := p.Read(); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	p := New()
	p.SetState(0)
	p.Write(1)
	p.Write(0)
	for i := 0; i < 8; i++ {
		p.Read()
	}
	for i := 0; i < 3; i++ {
		if got := p.Read(); got != 1 {
			t.Errorf("read %d past end = %d, want 1", i, got)
		}
	}
}

func TestStrobeHeldHighAlwaysReadsButtonA(t *testing.T) {
	p := New()
	p.SetState(ButtonA)
	p.Write(1)
	for i := 0; i < 5; i++ {
		if got := p.Read(); got != 1 {
			t.Errorf("read %d = %d, want 1 while strobe high", i, got)
		}
	}
}
