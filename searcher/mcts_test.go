package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"illimat/game"
)

func compactWithMover(player uint8) game.CompactState {
	var s game.CompactState
	s.Metadata = game.PackMetadata(game.Metadata{CurrentPlayer: player, Phase: game.PhasePlay})
	return s
}

// openingState gives the mover a few hand cards and spreads some loose
// cards over two fields.
func openingState() game.CompactState {
	s := compactWithMover(0)
	for _, id := range []uint8{1, 5, 20} {
		mask, _ := game.BitOf(id)
		s.PlayerHands[0] = s.PlayerHands[0].With(mask)
	}
	for _, id := range []uint8{30, 31} {
		mask, _ := game.BitOf(id)
		s.FieldCards[0] = s.FieldCards[0].With(mask)
	}
	mask, _ := game.BitOf(45)
	s.FieldCards[2] = s.FieldCards[2].With(mask)
	return s
}

func TestSearchRunsExactSimulationBudget(t *testing.T) {
	for _, budget := range []uint32{1, 10, 500} {
		tree := NewSearchTree(openingState(), WithSimulations(budget))

		_, ok := tree.Search()

		require.True(t, ok)
		require.Equal(t, budget, tree.stats.SimulationsCompleted,
			"a fixed budget of %d must run exactly that many iterations", budget)
	}
}

func TestSearchVisitConservation(t *testing.T) {
	const budget = 300
	tree := NewSearchTree(openingState(), WithSimulations(budget))

	_, ok := tree.Search()
	require.True(t, ok)

	root := tree.nodes[tree.root]
	require.Equal(t, uint32(budget), root.visits,
		"the root receives one visit per completed iteration")

	for i, n := range tree.nodes {
		if n.parent == noIndex {
			continue
		}
		require.LessOrEqual(t, n.visits, tree.nodes[n.parent].visits,
			"node %d has more visits than its parent", i)
	}
}

func TestSearchSingleCardScenario(t *testing.T) {
	// One hand card and empty fields: every candidate is a sow of that
	// card. Even a single simulation must recommend it.
	s := compactWithMover(1)
	bit5, _ := game.BitOf(5)
	s.PlayerHands[1] = bit5

	tree := NewSearchTree(s, WithSimulations(1))
	move, ok := tree.Search()

	require.True(t, ok)
	require.Equal(t, game.SowMove, move.Kind)
	require.Equal(t, bit5, move.PlayCard, "the only hand card must be the recommendation")
}

func TestSearchTerminalRoot(t *testing.T) {
	tree := NewSearchTree(compactWithMover(0), WithSimulations(50))

	_, ok := tree.Search()

	require.False(t, ok, "a root with no moves yields no recommendation")
	require.Equal(t, uint32(50), tree.stats.SimulationsCompleted,
		"the budget is still consumed on a terminal root")
	require.Len(t, tree.nodes, 1, "a terminal root grows no children")
	require.True(t, tree.nodes[tree.root].terminal)
}

func TestSearchRobustChild(t *testing.T) {
	tree := NewSearchTree(openingState(), WithSimulations(2000))

	move, ok := tree.Search()
	require.True(t, ok)

	best := uint32(0)
	var bestMove game.CompactMove
	for _, ci := range tree.nodes[tree.root].children {
		if v := tree.nodes[ci].visits; v > best {
			best = v
			bestMove = tree.nodes[ci].incoming
		}
	}
	require.Equal(t, bestMove, move, "the recommendation is the most visited root child")
}

// fakeClock advances a fixed step on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestSearchTimeLimit(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}
	tree := NewSearchTree(openingState(),
		WithTimeLimit(20*time.Millisecond),
		WithClock(clock),
	)

	_, ok := tree.Search()

	require.True(t, ok)
	require.Greater(t, tree.stats.SimulationsCompleted, uint32(0))
	// Each iteration reads the clock once, so the loop must stop within
	// the budget's worth of readings.
	require.Less(t, tree.stats.SimulationsCompleted, uint32(25))
}

func TestSearchDepthGuard(t *testing.T) {
	// A tiny depth bound must terminate cleanly even though the tree wants
	// to grow deeper.
	tree := NewSearchTree(openingState(),
		WithSimulations(200),
		WithMaxDepth(2),
	)

	_, ok := tree.Search()

	require.True(t, ok)
	require.Equal(t, uint32(200), tree.stats.SimulationsCompleted)
}

func TestSearchExpansionAppliesEveryMove(t *testing.T) {
	s := openingState()
	tree := NewSearchTree(s, WithSimulations(1))

	_, ok := tree.Search()
	require.True(t, ok)

	moves := game.GenerateMoves(s)
	require.Len(t, tree.nodes[tree.root].children, len(moves),
		"every applicable candidate becomes one child")

	for _, ci := range tree.nodes[tree.root].children {
		child := tree.nodes[ci]
		require.True(t, child.hasIncoming)
		require.NotEqual(t, s.CurrentPlayer(), child.state.CurrentPlayer(),
			"expansion advances the turn on child states")
	}
}
