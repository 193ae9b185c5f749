package cpu

import "fmt"

// Reg8 selects one of the 8-bit registers.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

var reg8Names = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Reg8) String() string {
	if int(r) >= len(reg8Names) {
		return fmt.Sprintf("Reg8(%d)", uint8(r))
	}
	return reg8Names[r]
}

// pair returns the pair holding r, and whether r is its high byte.
func (r Reg8) pair() (Pair, bool) {
	if int(r) >= len(reg8Names) {
		panic(fmt.Sprintf("cpu: invalid 8-bit register: %d", uint8(r)))
	}
	return Pair(r / 2), r%2 == 0
}

// Pair selects one of the 16-bit register pairs.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
)

var pairNames = [...]string{"AF", "BC", "DE", "HL"}

func (p Pair) String() string {
	if int(p) >= len(pairNames) {
		return fmt.Sprintf("Pair(%d)", uint8(p))
	}
	return pairNames[p]
}

// opcodeReg8 is the order of the 3-bit register field of an opcode.
// Index 6 is the (HL) memory operand and has no register.
var opcodeReg8 = [8]Reg8{RegB, RegC, RegD, RegE, RegH, RegL, 0xFF, RegA}

// Reg8FromOpcode returns the register encoded by the 3-bit register
// field of an opcode. Index 6, (HL), refers to memory and panics.
func Reg8FromOpcode(index uint8) Reg8 {
	if index >= uint8(len(opcodeReg8)) || index == 6 {
		panic(fmt.Sprintf("cpu: invalid register index: %d", index))
	}
	return opcodeReg8[index]
}

// opcodePair is the order of the 2-bit pair field used by PUSH and POP.
var opcodePair = [4]Pair{PairBC, PairDE, PairHL, PairAF}

// PairFromOpcode returns the pair encoded by the 2-bit pair field of
// a PUSH or POP opcode.
func PairFromOpcode(index uint8) Pair {
	if index >= uint8(len(opcodePair)) {
		panic(fmt.Sprintf("cpu: invalid register pair index: %d", index))
	}
	return opcodePair[index]
}
