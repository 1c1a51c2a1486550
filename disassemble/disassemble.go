// Package disassemble renders 6502 machine code as text, one instruction
// at a time, for the official opcode set the core implements.
package disassemble

import (
	"fmt"

	"github.com/aperez/nescore/cpu"
	"github.com/aperez/nescore/memory"
)

// Step disassembles the instruction at pc and returns its text along
// with the number of bytes it occupies (1-3), so a caller can advance pc
// for the next call. It does not interpret jumps/branches; a JMP target
// is printed, not followed. Unknown opcodes render as ".byte $xx" and
// occupy a single byte, matching how the core's Step treats them.
func Step(pc uint16, bank memory.Bank) (string, int) {
	op := bank.Read(pc)
	mnemonic, mode, ok := cpu.Decode(op)
	if !ok {
		return fmt.Sprintf(".byte $%02X", op), 1
	}

	b1 := bank.Read(pc + 1)
	b2 := bank.Read(pc + 2)

	switch mode {
	case cpu.ModeImplied:
		return mnemonic, 1
	case cpu.ModeAccumulator:
		return fmt.Sprintf("%s A", mnemonic), 1
	case cpu.ModeImmediate:
		return fmt.Sprintf("%s #$%02X", mnemonic, b1), 2
	case cpu.ModeZeroPage:
		return fmt.Sprintf("%s $%02X", mnemonic, b1), 2
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("%s $%02X,X", mnemonic, b1), 2
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", mnemonic, b1), 2
	case cpu.ModeRelative:
		target := pc + 2 + uint16(int8(b1))
		return fmt.Sprintf("%s $%04X", mnemonic, target), 2
	case cpu.ModeAbsolute:
		return fmt.Sprintf("%s $%04X", mnemonic, uint16(b1)|uint16(b2)<<8), 3
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("%s $%04X,X", mnemonic, uint16(b1)|uint16(b2)<<8), 3
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", mnemonic, uint16(b1)|uint16(b2)<<8), 3
	case cpu.ModeIndirect:
		return fmt.Sprintf("%s ($%04X)", mnemonic, uint16(b1)|uint16(b2)<<8), 3
	case cpu.ModeIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", mnemonic, b1), 2
	case cpu.ModeIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", mnemonic, b1), 2
	default:
		return fmt.Sprintf(".byte $%02X", op), 1
	}
}
