package cpu

import (
	"strings"
	"unicode"

	"github.com/thelolagemann/regfile/internal/types"
	"github.com/thelolagemann/regfile/pkg/bits"
)

// Flag is the mask of a single condition flag within the F register.
type Flag = uint8

const (
	FlagZero        Flag = types.Bit7
	FlagAddSubtract Flag = types.Bit6
	FlagHalfCarry   Flag = types.Bit5
	FlagCarry       Flag = types.Bit4

	// flagMask covers all four flags, the low nibble of F is unused.
	flagMask = FlagZero | FlagAddSubtract | FlagHalfCarry | FlagCarry
)

// Flags is the read projection of the F register. It is a copy of F
// taken when Registers.Flags is called, so it is never partially written.
type Flags uint8

// Zero returns true if the zero flag is set.
func (f Flags) Zero() bool {
	return bits.Test(uint8(f), FlagZero)
}

// AddSubtract returns true if the add/subtract (N) flag is set.
func (f Flags) AddSubtract() bool {
	return bits.Test(uint8(f), FlagAddSubtract)
}

// HalfCarry returns true if the half-carry flag is set.
func (f Flags) HalfCarry() bool {
	return bits.Test(uint8(f), FlagHalfCarry)
}

// Carry returns true if the carry flag is set.
func (f Flags) Carry() bool {
	return bits.Test(uint8(f), FlagCarry)
}

// String renders the flags as ZNHC, a set flag in upper case
// and a clear flag in lower case.
func (f Flags) String() string {
	s := strings.Builder{}
	for _, fl := range [...]struct {
		on   bool
		name rune
	}{
		{f.Zero(), 'Z'},
		{f.AddSubtract(), 'N'},
		{f.HalfCarry(), 'H'},
		{f.Carry(), 'C'},
	} {
		if fl.on {
			s.WriteRune(fl.name)
		} else {
			s.WriteRune(unicode.ToLower(fl.name))
		}
	}
	return s.String()
}

// FlagsWriter is the write projection of the F register. It holds no
// copy of F; every call reads and writes the low byte of AF directly.
// A FlagsWriter must be obtained from Registers.FlagsMut, the zero
// value is not bound to a register and panics on use.
type FlagsWriter struct {
	af *types.RegisterPair
}

func (w FlagsWriter) flags() Flags {
	return Flags(w.af.Low())
}

// assign sets or clears a single flag, leaving every other bit of F unchanged.
func (w FlagsWriter) assign(flag Flag, on bool) {
	w.af.SetLow(bits.Assign(w.af.Low(), flag, on))
}

// SetZero sets the zero flag to on.
func (w FlagsWriter) SetZero(on bool) {
	w.assign(FlagZero, on)
}

// SetAddSubtract sets the add/subtract (N) flag to on.
func (w FlagsWriter) SetAddSubtract(on bool) {
	w.assign(FlagAddSubtract, on)
}

// SetHalfCarry sets the half-carry flag to on.
func (w FlagsWriter) SetHalfCarry(on bool) {
	w.assign(FlagHalfCarry, on)
}

// SetCarry sets the carry flag to on.
func (w FlagsWriter) SetCarry(on bool) {
	w.assign(FlagCarry, on)
}

// Set replaces all four flags with those of f in a single write.
// The unused low nibble of F is kept as it is.
func (w FlagsWriter) Set(f Flags) {
	w.af.SetLow(bits.Replace(w.af.Low(), flagMask, uint8(f)))
}

func (w FlagsWriter) Zero() bool        { return w.flags().Zero() }
func (w FlagsWriter) AddSubtract() bool { return w.flags().AddSubtract() }
func (w FlagsWriter) HalfCarry() bool   { return w.flags().HalfCarry() }
func (w FlagsWriter) Carry() bool       { return w.flags().Carry() }

// NewFlags builds a Flags value from the four individual flags,
// for use with FlagsWriter.Set.
func NewFlags(zero, addSubtract, halfCarry, carry bool) Flags {
	var f uint8
	f = bits.Assign(f, FlagZero, zero)
	f = bits.Assign(f, FlagAddSubtract, addSubtract)
	f = bits.Assign(f, FlagHalfCarry, halfCarry)
	f = bits.Assign(f, FlagCarry, carry)
	return Flags(f)
}
