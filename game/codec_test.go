package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	cs := ToCompact(sampleCanonical())

	data, err := cs.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, CompactStateWireSize)

	var got CompactState
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, cs, got)
}

func TestCodecDecodeErrors(t *testing.T) {
	valid, err := ToCompact(sampleCanonical()).MarshalBinary()
	require.NoError(t, err)

	t.Run("wrong length", func(t *testing.T) {
		var s CompactState
		require.Error(t, s.UnmarshalBinary(valid[:len(valid)-1]))
		require.Error(t, s.UnmarshalBinary(nil))
	})

	t.Run("non-zero padding", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[len(data)-1] = 0xFF

		var s CompactState
		require.Error(t, s.UnmarshalBinary(data))
	})

	t.Run("exclusivity violation", func(t *testing.T) {
		bad := CompactState{}
		bit4, _ := BitOf(4)
		bad.FieldCards[0] = bit4
		bad.PlayerHands[2] = bit4
		data, err := bad.MarshalBinary()
		require.NoError(t, err)

		var s CompactState
		err = s.UnmarshalBinary(data)
		require.Error(t, err, "a snapshot with one card in two places must be rejected")
		require.Equal(t, CompactState{}, s, "a failed decode must not leave partial state")
	})
}
