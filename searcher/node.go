package searcher

import "illimat/game"

// noIndex marks an absent arena reference (a root's parent, an unset best
// child).
const noIndex = int32(-1)

// node is one arena entry. Nodes reference their parent and children only
// by index into the owning tree's arena, never by pointer: the arena slice
// may move when it grows, and index links stay valid across every
// reallocation. Nodes are created once, never deleted; the whole arena is
// discarded between searches.
type node struct {
	state game.CompactState

	visits      uint32
	totalReward float32

	parent   int32
	children []int32

	// incoming is the move that produced this node from its parent. The
	// root has none.
	incoming    game.CompactMove
	hasIncoming bool

	expanded       bool
	terminal       bool
	terminalReward float32
}
