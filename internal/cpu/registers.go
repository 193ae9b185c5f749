package cpu

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/regfile/internal/types"
	"github.com/thelolagemann/regfile/pkg/log"
)

// Registers is the register file of the CPU: the four register pairs AF,
// BC, DE and HL. The 8-bit registers are views onto the pairs, A and F
// being the high and low bytes of AF, B and C of BC, and so on.
//
// Registers is owned by a single execution loop and does no locking.
// The zero value is a zeroed register file that does not log.
type Registers struct {
	pairs [4]types.RegisterPair

	log log.Logger
}

// NewRegisters creates a register file with every pair set to zero,
// before applying the given options. Options are applied in order, so
// WithLogger should precede WithModel for the reset to be logged.
func NewRegisters(opts ...Opt) *Registers {
	r := &Registers{
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registers) logger() log.Logger {
	if r.log == nil {
		return log.NewNullLogger()
	}
	return r.log
}

var _ types.Resettable = (*Registers)(nil)

// Reset loads the post-boot values of AF, BC, DE and HL for the given model.
func (r *Registers) Reset(m types.Model) {
	for i, v := range types.ModelPairs(m) {
		r.pairs[i].SetUint16(v)
	}
	r.logger().Debugf("registers: reset to %s (%s)", m, r)
}

// Pair returns the register pair selected by p. The pair is owned by r
// and must not be retained beyond the current instruction.
func (r *Registers) Pair(p Pair) *types.RegisterPair {
	if int(p) >= len(r.pairs) {
		panic(fmt.Sprintf("cpu: invalid register pair: %d", uint8(p)))
	}
	return &r.pairs[p]
}

// Get16 returns the value of the register pair selected by p.
func (r *Registers) Get16(p Pair) uint16 {
	return r.Pair(p).Uint16()
}

// Set16 sets the value of the register pair selected by p.
func (r *Registers) Set16(p Pair, v uint16) {
	r.Pair(p).SetUint16(v)
}

// Get8 returns the value of the 8-bit register selected by reg.
func (r *Registers) Get8(reg Reg8) uint8 {
	p, high := reg.pair()
	if high {
		return r.pairs[p].High()
	}
	return r.pairs[p].Low()
}

// Set8 sets the value of the 8-bit register selected by reg,
// leaving the other half of its pair unchanged.
func (r *Registers) Set8(reg Reg8, v uint8) {
	p, high := reg.pair()
	if high {
		r.pairs[p].SetHigh(v)
	} else {
		r.pairs[p].SetLow(v)
	}
}

func (r *Registers) AF() uint16 { return r.pairs[PairAF].Uint16() }
func (r *Registers) BC() uint16 { return r.pairs[PairBC].Uint16() }
func (r *Registers) DE() uint16 { return r.pairs[PairDE].Uint16() }
func (r *Registers) HL() uint16 { return r.pairs[PairHL].Uint16() }

func (r *Registers) SetAF(v uint16) { r.pairs[PairAF].SetUint16(v) }
func (r *Registers) SetBC(v uint16) { r.pairs[PairBC].SetUint16(v) }
func (r *Registers) SetDE(v uint16) { r.pairs[PairDE].SetUint16(v) }
func (r *Registers) SetHL(v uint16) { r.pairs[PairHL].SetUint16(v) }

func (r *Registers) A() uint8 { return r.pairs[PairAF].High() }
func (r *Registers) F() uint8 { return r.pairs[PairAF].Low() }
func (r *Registers) B() uint8 { return r.pairs[PairBC].High() }
func (r *Registers) C() uint8 { return r.pairs[PairBC].Low() }
func (r *Registers) D() uint8 { return r.pairs[PairDE].High() }
func (r *Registers) E() uint8 { return r.pairs[PairDE].Low() }
func (r *Registers) H() uint8 { return r.pairs[PairHL].High() }
func (r *Registers) L() uint8 { return r.pairs[PairHL].Low() }

func (r *Registers) SetA(v uint8) { r.pairs[PairAF].SetHigh(v) }
func (r *Registers) SetF(v uint8) { r.pairs[PairAF].SetLow(v) }
func (r *Registers) SetB(v uint8) { r.pairs[PairBC].SetHigh(v) }
func (r *Registers) SetC(v uint8) { r.pairs[PairBC].SetLow(v) }
func (r *Registers) SetD(v uint8) { r.pairs[PairDE].SetHigh(v) }
func (r *Registers) SetE(v uint8) { r.pairs[PairDE].SetLow(v) }
func (r *Registers) SetH(v uint8) { r.pairs[PairHL].SetHigh(v) }
func (r *Registers) SetL(v uint8) { r.pairs[PairHL].SetLow(v) }

// Flags returns the read projection of the F register.
func (r *Registers) Flags() Flags {
	return Flags(r.pairs[PairAF].Low())
}

// FlagsMut returns the write projection of the F register. It should be
// obtained and used within a single instruction and not stored.
func (r *Registers) FlagsMut() FlagsWriter {
	return FlagsWriter{af: &r.pairs[PairAF]}
}

func (r *Registers) String() string {
	return fmt.Sprintf("AF=%s BC=%s DE=%s HL=%s [%s]",
		&r.pairs[PairAF], &r.pairs[PairBC], &r.pairs[PairDE], &r.pairs[PairHL], r.Flags())
}

var _ types.Stater = (*Registers)(nil)

// Save writes AF, BC, DE and HL to the state, in that order.
func (r *Registers) Save(s *types.State) {
	for i := range r.pairs {
		s.Write16(r.pairs[i].Uint16())
	}
}

// Load reads AF, BC, DE and HL from the state, in that order. If the
// state is truncated the error is logged, kept on the state, and the
// registers are left unchanged.
func (r *Registers) Load(s *types.State) {
	var pairs [4]uint16
	for i := range pairs {
		pairs[i] = s.Read16()
	}
	if err := s.Err(); err != nil {
		r.logger().Errorf("registers: unable to load state: %v", err)
		return
	}
	for i, v := range pairs {
		r.pairs[i].SetUint16(v)
	}
}

// Hash returns a digest of the register values, two register files
// holding the same values produce the same hash.
func (r *Registers) Hash() uint64 {
	s := types.NewState()
	r.Save(s)
	return xxhash.Sum64(s.Bytes())
}
