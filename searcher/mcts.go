package searcher

import (
	"time"

	"illimat/game"
)

const (
	// DefaultSimulations is the iteration budget when the caller sets
	// neither a simulation count nor a time limit.
	DefaultSimulations = uint32(1000)

	// DefaultMaxDepth bounds the selection descent. Selection in a
	// well-formed tree terminates long before this; the bound exists so a
	// malformed tree can never turn selection into an infinite loop.
	DefaultMaxDepth = uint32(512)
)

type Option func(t *SearchTree)

// WithSimulations sets a fixed iteration budget and disables any time
// limit; the two stop conditions are mutually exclusive.
func WithSimulations(n uint32) Option {
	return func(t *SearchTree) {
		if n > 0 {
			t.simulations = n
			t.timeLimit = 0
		}
	}
}

// WithTimeLimit sets a wall-clock budget and disables the simulation
// budget. The limit is checked once per iteration, so a search may overrun
// it by at most one iteration's cost.
func WithTimeLimit(d time.Duration) Option {
	return func(t *SearchTree) {
		if d > 0 {
			t.timeLimit = d
			t.simulations = 0
		}
	}
}

func WithExploration(c float32) Option {
	return func(t *SearchTree) {
		if c > 0 {
			t.exploration = c
		}
	}
}

func WithMaxDepth(depth uint32) Option {
	return func(t *SearchTree) {
		if depth > 0 {
			t.maxDepth = depth
		}
	}
}

func WithEvaluator(evaluate game.Evaluate) Option {
	return func(t *SearchTree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithClock(c Clock) Option {
	return func(t *SearchTree) {
		if c != nil {
			t.clock = c
		}
	}
}

// SearchTree is one single-threaded Monte Carlo search over compact states.
// All nodes live in the arena slice and reference each other by index, so
// growing the arena never invalidates a link. A tree is built fresh per
// search invocation and discarded once the recommended move is extracted.
type SearchTree struct {
	nodes []node
	root  int32

	simulations uint32
	timeLimit   time.Duration
	exploration float32
	maxDepth    uint32
	evaluate    game.Evaluate
	clock       Clock

	stats SearchStats
}

// NewSearchTree builds a tree around one root state. Defaults: a
// 1000-simulation budget, sqrt(2) exploration, the package evaluator, and
// the system monotonic clock.
func NewSearchTree(root game.CompactState, options ...Option) *SearchTree {
	t := &SearchTree{
		nodes:       []node{{state: root, parent: noIndex}},
		root:        0,
		simulations: DefaultSimulations,
		exploration: DefaultExploration,
		maxDepth:    DefaultMaxDepth,
		evaluate:    game.EvaluatePosition,
		clock:       systemClock{},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Search runs selection, expansion, evaluation, and backpropagation until
// the configured budget is exhausted, then returns the robust child's move.
// It reports false when the root has no applicable moves.
func (t *SearchTree) Search() (game.CompactMove, bool) {
	start := t.clock.Now()

	completed := uint32(0)
	for {
		if t.timeLimit > 0 {
			if elapsedSince(t.clock, start) >= t.timeLimit {
				break
			}
		} else if completed >= t.simulations {
			break
		}

		leaf := t.selectLeaf()
		target := t.expandNode(leaf)
		reward := t.rewardOf(target)
		t.backpropagate(target, reward)
		completed++
	}

	t.stats.SimulationsCompleted = completed
	t.stats.SearchTime = elapsedSince(t.clock, start)
	return t.bestMove()
}

// selectLeaf descends from the root by UCB1 until it reaches a node that
// is unexpanded, terminal, or childless. The descent is depth-bounded as a
// defensive invariant against malformed link structure.
func (t *SearchTree) selectLeaf() int32 {
	idx := t.root
	for depth := uint32(0); depth < t.maxDepth; depth++ {
		n := &t.nodes[idx]
		if !n.expanded || n.terminal || len(n.children) == 0 {
			return idx
		}
		idx = t.bestChildByUCB(idx)
	}
	return idx
}

func (t *SearchTree) bestChildByUCB(idx int32) int32 {
	parent := &t.nodes[idx]
	best := parent.children[0]
	bestScore := float32(-1)
	for _, ci := range parent.children {
		child := &t.nodes[ci]
		score := ucb1(child.totalReward, child.visits, parent.visits, t.exploration)
		if score > bestScore {
			bestScore = score
			best = ci
		}
	}
	return best
}

// expandNode expands an unexpanded non-terminal node: one child per
// candidate move that the transition function accepts, each with the turn
// advanced. Zero applicable moves marks the node terminal with a cached
// reward. It returns the node to evaluate this iteration: the first new
// child, or the node itself when it is terminal or already expanded.
func (t *SearchTree) expandNode(idx int32) int32 {
	if t.nodes[idx].terminal || t.nodes[idx].expanded {
		return idx
	}

	// Copy out the state: appending to the arena below may move the slice.
	state := t.nodes[idx].state
	moves := game.GenerateMoves(state)

	first := noIndex
	for _, m := range moves {
		next, ok := game.Apply(state, m)
		if !ok {
			continue
		}
		next = game.AdvanceTurn(next)
		t.nodes = append(t.nodes, node{
			state:       next,
			parent:      idx,
			incoming:    m,
			hasIncoming: true,
		})
		ci := int32(len(t.nodes) - 1)
		t.nodes[idx].children = append(t.nodes[idx].children, ci)
		if first == noIndex {
			first = ci
		}
	}

	if first == noIndex {
		t.nodes[idx].terminal = true
		t.nodes[idx].terminalReward = t.evaluate(state)
		return idx
	}
	t.nodes[idx].expanded = true
	return first
}

// rewardOf is the simulation phase: terminal nodes return their cached
// reward, everything else is scored by the static evaluator directly. No
// random playout.
func (t *SearchTree) rewardOf(idx int32) float32 {
	n := &t.nodes[idx]
	if n.terminal {
		return n.terminalReward
	}
	return t.evaluate(n.state)
}

// backpropagate walks parent links from the evaluated node to the root,
// accumulating the reward. The walk is iterative, not recursive, and
// bounded by the arena size: a parent chain longer than the node count
// would mean a cycle.
func (t *SearchTree) backpropagate(idx int32, reward float32) {
	for steps := 0; idx != noIndex && steps < len(t.nodes); steps++ {
		n := &t.nodes[idx]
		n.visits++
		n.totalReward += reward
		idx = n.parent
	}
}

// bestMove applies the robust-child rule: among root children, the one
// with the most visits. Visit count is preferred over average reward
// because it is less sensitive to evaluation noise.
func (t *SearchTree) bestMove() (game.CompactMove, bool) {
	ci := t.bestChildByVisits()
	if ci == noIndex {
		return game.CompactMove{}, false
	}
	child := &t.nodes[ci]
	return child.incoming, child.hasIncoming
}

func (t *SearchTree) bestChildByVisits() int32 {
	root := &t.nodes[t.root]
	best := noIndex
	bestVisits := uint32(0)
	for _, ci := range root.children {
		if v := t.nodes[ci].visits; best == noIndex || v > bestVisits {
			best = ci
			bestVisits = v
		}
	}
	return best
}
