package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMovesCounts(t *testing.T) {
	s := stateWithMover(1)
	bit2, _ := BitOf(2)
	bit40, _ := BitOf(40)
	s.PlayerHands[1] = bit2 | bit40

	bit7, _ := BitOf(7)
	bit30, _ := BitOf(30)
	s.FieldCards[0] = bit7
	s.FieldCards[3] = bit7<<1 | bit30

	moves := GenerateMoves(s)

	// Two hand cards: each sows into all four fields and harvests the two
	// non-empty fields.
	require.Len(t, moves, 2*(NumFields+2))

	sows, harvests := 0, 0
	for _, m := range moves {
		switch m.Kind {
		case SowMove:
			sows++
			require.Zero(t, m.Targets, "sows carry no targets")
		case HarvestMove:
			harvests++
			require.Equal(t, s.FieldCards[m.Field], m.Targets,
				"harvest targets are the whole field")
		}
		require.Equal(t, 1, m.PlayCard.Count(), "play mask is a single bit")
		require.True(t, s.PlayerHands[1].Contains(m.PlayCard))
	}
	require.Equal(t, 2*NumFields, sows)
	require.Equal(t, 4, harvests)
}

func TestGenerateMovesEmptyHandIsTerminal(t *testing.T) {
	s := stateWithMover(0)
	bit7, _ := BitOf(7)
	s.FieldCards[0] = bit7

	require.Empty(t, GenerateMoves(s), "no hand cards means no moves")
}

func TestGeneratedMovesAllApply(t *testing.T) {
	s := stateWithMover(3)
	bit11, _ := BitOf(11)
	bit12, _ := BitOf(12)
	bit50, _ := BitOf(50)
	s.PlayerHands[3] = bit11 | bit12
	s.FieldCards[2] = bit50

	for _, m := range GenerateMoves(s) {
		next, ok := Apply(s, m)
		require.True(t, ok, "generated move %v must apply to its own state", m)
		require.True(t, next.CheckExclusivity())
	}
}
