package disassemble

import (
	"testing"

	"github.com/aperez/nescore/memory"
)

func TestStepKnownOpcodes(t *testing.T) {
	ram, err := memory.NewRAMBank(0x10000)
	if err != nil {
		t.Fatalf("NewRAMBank: %v", err)
	}
	ram.Write(0x8000, 0xA9)
	ram.Write(0x8001, 0x10)
	ram.Write(0x8002, 0x8D)
	ram.Write(0x8003, 0x00)
	ram.Write(0x8004, 0x20)

	text, n := Step(0x8000, ram)
	if text != "LDA #$10" || n != 2 {
		t.Errorf("got %q/%d, want \"LDA #$10\"/2", text, n)
	}
	text, n = Step(0x8002, ram)
	if text != "STA $2000" || n != 3 {
		t.Errorf("got %q/%d, want \"STA $2000\"/3", text, n)
	}
}

func TestStepUnknownOpcode(t *testing.T) {
	ram, err := memory.NewRAMBank(0x10000)
	if err != nil {
		t.Fatalf("NewRAMBank: %v", err)
	}
	ram.Write(0x8000, 0x02)
	text, n := Step(0x8000, ram)
	if text != ".byte $02" || n != 1 {
		t.Errorf("got %q/%d, want \".byte $02\"/1", text, n)
	}
}
