package cpu

// opEntry describes one decoded opcode: its addressing mode, base cycle
// cost, whether an indexed-addressing page cross adds a cycle, and the
// function that carries out the instruction.
type opEntry struct {
	mnemonic    string
	mode        AddrMode
	cycles      int
	pageCrossOK bool
	exec        execFunc
}

// opcodeTable is indexed by opcode byte. Only the 151 official 6502
// opcodes are populated; the remaining 105 slots are left at their zero
// value (exec == nil), which Step reports via Diag as an unknown opcode.
var opcodeTable [256]opEntry

func def(op uint8, mnemonic string, mode AddrMode, cycles int, pageCrossOK bool, exec execFunc) {
	opcodeTable[op] = opEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, pageCrossOK: pageCrossOK, exec: exec}
}

// Decode looks up opcode byte op's mnemonic and addressing mode, for use
// by tools (the disassembler) that need decode information without
// executing anything. ok is false for the 105 unassigned opcode values.
func Decode(op uint8) (mnemonic string, mode AddrMode, ok bool) {
	e := &opcodeTable[op]
	if e.exec == nil {
		return "", ModeImplied, false
	}
	return e.mnemonic, e.mode, true
}

func init() {
	// ADC
	def(0x69, "ADC", ModeImmediate, 2, false, iADC)
	def(0x65, "ADC", ModeZeroPage, 3, false, iADC)
	def(0x75, "ADC", ModeZeroPageX, 4, false, iADC)
	def(0x6D, "ADC", ModeAbsolute, 4, false, iADC)
	def(0x7D, "ADC", ModeAbsoluteX, 4, true, iADC)
	def(0x79, "ADC", ModeAbsoluteY, 4, true, iADC)
	def(0x61, "ADC", ModeIndirectX, 6, false, iADC)
	def(0x71, "ADC", ModeIndirectY, 5, true, iADC)

	// AND
	def(0x29, "AND", ModeImmediate, 2, false, iAND)
	def(0x25, "AND", ModeZeroPage, 3, false, iAND)
	def(0x35, "AND", ModeZeroPageX, 4, false, iAND)
	def(0x2D, "AND", ModeAbsolute, 4, false, iAND)
	def(0x3D, "AND", ModeAbsoluteX, 4, true, iAND)
	def(0x39, "AND", ModeAbsoluteY, 4, true, iAND)
	def(0x21, "AND", ModeIndirectX, 6, false, iAND)
	def(0x31, "AND", ModeIndirectY, 5, true, iAND)

	// ASL
	def(0x0A, "ASL", ModeAccumulator, 2, false, iASLAcc)
	def(0x06, "ASL", ModeZeroPage, 5, false, iASLMem)
	def(0x16, "ASL", ModeZeroPageX, 6, false, iASLMem)
	def(0x0E, "ASL", ModeAbsolute, 6, false, iASLMem)
	def(0x1E, "ASL", ModeAbsoluteX, 7, false, iASLMem)

	// branches
	def(0x90, "BCC", ModeRelative, 2, false, iBCC)
	def(0xB0, "BCS", ModeRelative, 2, false, iBCS)
	def(0xF0, "BEQ", ModeRelative, 2, false, iBEQ)
	def(0xD0, "BNE", ModeRelative, 2, false, iBNE)
	def(0x30, "BMI", ModeRelative, 2, false, iBMI)
	def(0x10, "BPL", ModeRelative, 2, false, iBPL)
	def(0x50, "BVC", ModeRelative, 2, false, iBVC)
	def(0x70, "BVS", ModeRelative, 2, false, iBVS)

	// BIT
	def(0x24, "BIT", ModeZeroPage, 3, false, iBIT)
	def(0x2C, "BIT", ModeAbsolute, 4, false, iBIT)

	// BRK
	def(0x00, "BRK", ModeImplied, 7, false, iBRK)

	// flag clear/set
	def(0x18, "CLC", ModeImplied, 2, false, iCLC)
	def(0xD8, "CLD", ModeImplied, 2, false, iCLD)
	def(0x58, "CLI", ModeImplied, 2, false, iCLI)
	def(0xB8, "CLV", ModeImplied, 2, false, iCLV)
	def(0x38, "SEC", ModeImplied, 2, false, iSEC)
	def(0xF8, "SED", ModeImplied, 2, false, iSED)
	def(0x78, "SEI", ModeImplied, 2, false, iSEI)

	// CMP
	def(0xC9, "CMP", ModeImmediate, 2, false, iCMP)
	def(0xC5, "CMP", ModeZeroPage, 3, false, iCMP)
	def(0xD5, "CMP", ModeZeroPageX, 4, false, iCMP)
	def(0xCD, "CMP", ModeAbsolute, 4, false, iCMP)
	def(0xDD, "CMP", ModeAbsoluteX, 4, true, iCMP)
	def(0xD9, "CMP", ModeAbsoluteY, 4, true, iCMP)
	def(0xC1, "CMP", ModeIndirectX, 6, false, iCMP)
	def(0xD1, "CMP", ModeIndirectY, 5, true, iCMP)

	// CPX/CPY
	def(0xE0, "CPX", ModeImmediate, 2, false, iCPX)
	def(0xE4, "CPX", ModeZeroPage, 3, false, iCPX)
	def(0xEC, "CPX", ModeAbsolute, 4, false, iCPX)
	def(0xC0, "CPY", ModeImmediate, 2, false, iCPY)
	def(0xC4, "CPY", ModeZeroPage, 3, false, iCPY)
	def(0xCC, "CPY", ModeAbsolute, 4, false, iCPY)

	// DEC/DEX/DEY
	def(0xC6, "DEC", ModeZeroPage, 5, false, iDEC)
	def(0xD6, "DEC", ModeZeroPageX, 6, false, iDEC)
	def(0xCE, "DEC", ModeAbsolute, 6, false, iDEC)
	def(0xDE, "DEC", ModeAbsoluteX, 7, false, iDEC)
	def(0xCA, "DEX", ModeImplied, 2, false, iDEX)
	def(0x88, "DEY", ModeImplied, 2, false, iDEY)

	// EOR
	def(0x49, "EOR", ModeImmediate, 2, false, iEOR)
	def(0x45, "EOR", ModeZeroPage, 3, false, iEOR)
	def(0x55, "EOR", ModeZeroPageX, 4, false, iEOR)
	def(0x4D, "EOR", ModeAbsolute, 4, false, iEOR)
	def(0x5D, "EOR", ModeAbsoluteX, 4, true, iEOR)
	def(0x59, "EOR", ModeAbsoluteY, 4, true, iEOR)
	def(0x41, "EOR", ModeIndirectX, 6, false, iEOR)
	def(0x51, "EOR", ModeIndirectY, 5, true, iEOR)

	// INC/INX/INY
	def(0xE6, "INC", ModeZeroPage, 5, false, iINC)
	def(0xF6, "INC", ModeZeroPageX, 6, false, iINC)
	def(0xEE, "INC", ModeAbsolute, 6, false, iINC)
	def(0xFE, "INC", ModeAbsoluteX, 7, false, iINC)
	def(0xE8, "INX", ModeImplied, 2, false, iINX)
	def(0xC8, "INY", ModeImplied, 2, false, iINY)

	// JMP/JSR/RTS/RTI
	def(0x4C, "JMP", ModeAbsolute, 3, false, iJMP)
	def(0x6C, "JMP", ModeIndirect, 5, false, iJMP)
	def(0x20, "JSR", ModeAbsolute, 6, false, iJSR)
	def(0x60, "RTS", ModeImplied, 6, false, iRTS)
	def(0x40, "RTI", ModeImplied, 6, false, iRTI)

	// LDA/LDX/LDY
	def(0xA9, "LDA", ModeImmediate, 2, false, iLDA)
	def(0xA5, "LDA", ModeZeroPage, 3, false, iLDA)
	def(0xB5, "LDA", ModeZeroPageX, 4, false, iLDA)
	def(0xAD, "LDA", ModeAbsolute, 4, false, iLDA)
	def(0xBD, "LDA", ModeAbsoluteX, 4, true, iLDA)
	def(0xB9, "LDA", ModeAbsoluteY, 4, true, iLDA)
	def(0xA1, "LDA", ModeIndirectX, 6, false, iLDA)
	def(0xB1, "LDA", ModeIndirectY, 5, true, iLDA)

	def(0xA2, "LDX", ModeImmediate, 2, false, iLDX)
	def(0xA6, "LDX", ModeZeroPage, 3, false, iLDX)
	def(0xB6, "LDX", ModeZeroPageY, 4, false, iLDX)
	def(0xAE, "LDX", ModeAbsolute, 4, false, iLDX)
	def(0xBE, "LDX", ModeAbsoluteY, 4, true, iLDX)

	def(0xA0, "LDY", ModeImmediate, 2, false, iLDY)
	def(0xA4, "LDY", ModeZeroPage, 3, false, iLDY)
	def(0xB4, "LDY", ModeZeroPageX, 4, false, iLDY)
	def(0xAC, "LDY", ModeAbsolute, 4, false, iLDY)
	def(0xBC, "LDY", ModeAbsoluteX, 4, true, iLDY)

	// LSR
	def(0x4A, "LSR", ModeAccumulator, 2, false, iLSRAcc)
	def(0x46, "LSR", ModeZeroPage, 5, false, iLSRMem)
	def(0x56, "LSR", ModeZeroPageX, 6, false, iLSRMem)
	def(0x4E, "LSR", ModeAbsolute, 6, false, iLSRMem)
	def(0x5E, "LSR", ModeAbsoluteX, 7, false, iLSRMem)

	// NOP
	def(0xEA, "NOP", ModeImplied, 2, false, iNOP)

	// ORA
	def(0x09, "ORA", ModeImmediate, 2, false, iORA)
	def(0x05, "ORA", ModeZeroPage, 3, false, iORA)
	def(0x15, "ORA", ModeZeroPageX, 4, false, iORA)
	def(0x0D, "ORA", ModeAbsolute, 4, false, iORA)
	def(0x1D, "ORA", ModeAbsoluteX, 4, true, iORA)
	def(0x19, "ORA", ModeAbsoluteY, 4, true, iORA)
	def(0x01, "ORA", ModeIndirectX, 6, false, iORA)
	def(0x11, "ORA", ModeIndirectY, 5, true, iORA)

	// stack
	def(0x48, "PHA", ModeImplied, 3, false, iPHA)
	def(0x08, "PHP", ModeImplied, 3, false, iPHP)
	def(0x68, "PLA", ModeImplied, 4, false, iPLA)
	def(0x28, "PLP", ModeImplied, 4, false, iPLP)

	// ROL/ROR
	def(0x2A, "ROL", ModeAccumulator, 2, false, iROLAcc)
	def(0x26, "ROL", ModeZeroPage, 5, false, iROLMem)
	def(0x36, "ROL", ModeZeroPageX, 6, false, iROLMem)
	def(0x2E, "ROL", ModeAbsolute, 6, false, iROLMem)
	def(0x3E, "ROL", ModeAbsoluteX, 7, false, iROLMem)

	def(0x6A, "ROR", ModeAccumulator, 2, false, iRORAcc)
	def(0x66, "ROR", ModeZeroPage, 5, false, iRORMem)
	def(0x76, "ROR", ModeZeroPageX, 6, false, iRORMem)
	def(0x6E, "ROR", ModeAbsolute, 6, false, iRORMem)
	def(0x7E, "ROR", ModeAbsoluteX, 7, false, iRORMem)

	// SBC
	def(0xE9, "SBC", ModeImmediate, 2, false, iSBC)
	def(0xE5, "SBC", ModeZeroPage, 3, false, iSBC)
	def(0xF5, "SBC", ModeZeroPageX, 4, false, iSBC)
	def(0xED, "SBC", ModeAbsolute, 4, false, iSBC)
	def(0xFD, "SBC", ModeAbsoluteX, 4, true, iSBC)
	def(0xF9, "SBC", ModeAbsoluteY, 4, true, iSBC)
	def(0xE1, "SBC", ModeIndirectX, 6, false, iSBC)
	def(0xF1, "SBC", ModeIndirectY, 5, true, iSBC)

	// STA/STX/STY -- stores never get a page-cross bonus; the indexed
	// forms that could cross a page already bake the extra cycle into
	// their fixed cost instead.
	def(0x85, "STA", ModeZeroPage, 3, false, iSTA)
	def(0x95, "STA", ModeZeroPageX, 4, false, iSTA)
	def(0x8D, "STA", ModeAbsolute, 4, false, iSTA)
	def(0x9D, "STA", ModeAbsoluteX, 5, false, iSTA)
	def(0x99, "STA", ModeAbsoluteY, 5, false, iSTA)
	def(0x81, "STA", ModeIndirectX, 6, false, iSTA)
	def(0x91, "STA", ModeIndirectY, 6, false, iSTA)

	def(0x86, "STX", ModeZeroPage, 3, false, iSTX)
	def(0x96, "STX", ModeZeroPageY, 4, false, iSTX)
	def(0x8E, "STX", ModeAbsolute, 4, false, iSTX)

	def(0x84, "STY", ModeZeroPage, 3, false, iSTY)
	def(0x94, "STY", ModeZeroPageX, 4, false, iSTY)
	def(0x8C, "STY", ModeAbsolute, 4, false, iSTY)

	// register transfers
	def(0xAA, "TAX", ModeImplied, 2, false, iTAX)
	def(0xA8, "TAY", ModeImplied, 2, false, iTAY)
	def(0xBA, "TSX", ModeImplied, 2, false, iTSX)
	def(0x8A, "TXA", ModeImplied, 2, false, iTXA)
	def(0x9A, "TXS", ModeImplied, 2, false, iTXS)
	def(0x98, "TYA", ModeImplied, 2, false, iTYA)
}
