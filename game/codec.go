package game

import (
	"encoding/binary"
	"fmt"
)

// CompactStateWireSize is the serialized length of one compact state:
// thirteen location words, four stockpile words, the metadata word, the
// overflow bitmap, and the reserved padding, all little-endian.
const CompactStateWireSize = 8*(NumFields+2*NumPlayers+1) + 8*NumFields + 8 + 2 + 2

// MarshalBinary serializes the packed words in declaration order. The
// packed layout is itself the wire format, so serialization is a plain
// little-endian dump.
func (s CompactState) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, CompactStateWireSize)
	for f := 0; f < NumFields; f++ {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s.FieldCards[f]))
	}
	for p := 0; p < NumPlayers; p++ {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s.PlayerHands[p]))
	}
	for p := 0; p < NumPlayers; p++ {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s.PlayerHarvests[p]))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.DeckRemaining))
	for f := 0; f < NumFields; f++ {
		buf = binary.LittleEndian.AppendUint64(buf, s.Stockpiles[f])
	}
	buf = binary.LittleEndian.AppendUint64(buf, s.Metadata)
	buf = binary.LittleEndian.AppendUint16(buf, s.OverflowLocations)
	buf = binary.LittleEndian.AppendUint16(buf, s.Padding)
	return buf, nil
}

// UnmarshalBinary decodes a serialized compact state. Decode failures are
// the one class of error this package propagates: a wrong-length buffer,
// non-zero padding, or a snapshot violating location exclusivity all
// surface as explicit errors rather than producing a corrupt state.
func (s *CompactState) UnmarshalBinary(data []byte) error {
	if len(data) != CompactStateWireSize {
		return fmt.Errorf("compact state: expected %d bytes, got %d", CompactStateWireSize, len(data))
	}
	var out CompactState
	off := 0
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(data[off:])
		off += 8
		return v
	}
	for f := 0; f < NumFields; f++ {
		out.FieldCards[f] = Bitset(next())
	}
	for p := 0; p < NumPlayers; p++ {
		out.PlayerHands[p] = Bitset(next())
	}
	for p := 0; p < NumPlayers; p++ {
		out.PlayerHarvests[p] = Bitset(next())
	}
	out.DeckRemaining = Bitset(next())
	for f := 0; f < NumFields; f++ {
		out.Stockpiles[f] = next()
	}
	out.Metadata = next()
	out.OverflowLocations = binary.LittleEndian.Uint16(data[off:])
	out.Padding = binary.LittleEndian.Uint16(data[off+2:])

	if out.Padding != 0 {
		return fmt.Errorf("compact state: non-zero padding %#x", out.Padding)
	}
	if !out.CheckExclusivity() {
		return fmt.Errorf("compact state: card present in multiple locations")
	}
	*s = out
	return nil
}
