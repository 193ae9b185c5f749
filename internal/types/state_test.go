package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		s := NewState()
		s.Write16(0xABCD)
		s.Write16(0x0102)
		assert.Equal(t, []byte{0xCD, 0xAB, 0x02, 0x01}, s.Bytes())

		r := StateFromBytes(s.Bytes())
		assert.Equal(t, uint16(0xABCD), r.Read16())
		assert.Equal(t, uint16(0x0102), r.Read16())
		assert.Equal(t, 0, r.Remaining())
		require.NoError(t, r.Err())
	})
	t.Run("truncated", func(t *testing.T) {
		s := StateFromBytes([]byte{0x01, 0x02, 0x03})
		assert.Equal(t, uint16(0x0201), s.Read16())
		assert.Equal(t, uint16(0), s.Read16())
		require.ErrorIs(t, s.Err(), ErrStateTruncated)

		// the first error sticks, and nothing more is consumed
		assert.Equal(t, 1, s.Remaining())
		assert.Equal(t, uint16(0), s.Read16())
	})
}
