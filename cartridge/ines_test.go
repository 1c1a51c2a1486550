package cartridge

import "testing"

func buildROM(prgBanks, chrBanks int, flags6, flags7 uint8, trainer bool) []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1A, uint8(prgBanks), uint8(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if trainer {
		data = append(data, make([]uint8, trainerSize)...)
	}
	data = append(data, make([]uint8, prgBanks*prgBankSize)...)
	data = append(data, make([]uint8, chrBanks*chrBankSize)...)
	return data
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildROM(1, 1, 0, 0, false)
	data[0] = 'X'
	if _, err := LoadINES(data); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	data := buildROM(1, 1, 0x10, 0, false) // mapper nibble 1 -> mapper 1
	if _, err := LoadINES(data); err == nil {
		t.Fatal("expected error for unsupported mapper")
	}
}

func TestLoadSkipsTrainer(t *testing.T) {
	data := buildROM(1, 1, 0x04, 0, true)
	// Mark the first PRG byte distinctly so we can tell trainer was skipped.
	trainerEnd := headerSize + trainerSize
	data[trainerEnd] = 0xAB
	cart, err := LoadINES(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cart.PRG[0] != 0xAB {
		t.Errorf("PRG[0] = 0x%02X, want 0xAB (trainer not skipped)", cart.PRG[0])
	}
}

func TestCPUReadMirrorsSingleBank(t *testing.T) {
	data := buildROM(1, 1, 0, 0, false)
	data[headerSize] = 0x42
	cart, err := LoadINES(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cart.CPURead(0x8000); got != 0x42 {
		t.Errorf("CPURead(0x8000) = 0x%02X, want 0x42", got)
	}
	if got := cart.CPURead(0xC000); got != 0x42 {
		t.Errorf("CPURead(0xC000) = 0x%02X, want 0x42 (mirrored bank)", got)
	}
}

func TestCHRRAMFallback(t *testing.T) {
	data := buildROM(1, 0, 0, 0, false)
	cart, err := LoadINES(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cart.PPUWrite(0x0010, 0x99)
	if got := cart.PPURead(0x0010); got != 0x99 {
		t.Errorf("PPURead(0x0010) = 0x%02X, want 0x99 (CHR-RAM should accept writes)", got)
	}
}
