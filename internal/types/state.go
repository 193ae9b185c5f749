package types

import (
	"errors"
	"fmt"
)

// ErrStateTruncated is recorded when a read runs past the end of the state.
var ErrStateTruncated = errors.New("state: truncated")

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset(Model) // Reset the state of the object
}

// State holds serialized CPU state. This is used to
// save and load states between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

// Remaining returns the number of bytes left to read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

// Err returns the first error encountered while reading, if any.
func (s *State) Err() error {
	return s.err
}

// need checks that n bytes are available, recording
// ErrStateTruncated if they are not.
func (s *State) need(n int) bool {
	if s.err != nil {
		return false
	}
	if s.Remaining() < n {
		s.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrStateTruncated, n, s.readPosition, s.Remaining())
		return false
	}
	return true
}

func (s *State) Read16() uint16 {
	if !s.need(2) {
		return 0
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) Bytes() []byte {
	return s.raw
}
