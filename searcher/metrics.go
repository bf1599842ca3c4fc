package searcher

import (
	"time"
	"unsafe"

	"illimat/game"
)

// SearchStats accumulates over one Search call.
type SearchStats struct {
	SimulationsCompleted uint32
	SearchTime           time.Duration
}

// ChildStat summarizes one root child for analysis output.
type ChildStat struct {
	Move          game.CompactMove
	Visits        uint32
	AverageReward float32

	// Confidence is the share of root visits that flowed through this
	// child.
	Confidence float32
}

// Analysis is the introspection snapshot exposed to hosts after a search.
type Analysis struct {
	TotalSimulations     uint32
	SearchTime           time.Duration
	SimulationsPerSecond float64
	TotalNodes           int
	RootVisits           uint32
	BestMove             *game.CompactMove
	Children             []ChildStat
}

// MemoryStats estimates the arena footprint. BytesPerNode covers the node
// value itself, not per-node child-slice backing arrays.
type MemoryStats struct {
	TotalNodes          int
	BytesPerNode        int
	EstimatedTotalBytes int
}

// Analysis reports statistics for the most recent Search call. Before any
// search it describes the bare root.
func (t *SearchTree) Analysis() Analysis {
	root := &t.nodes[t.root]
	a := Analysis{
		TotalSimulations: t.stats.SimulationsCompleted,
		SearchTime:       t.stats.SearchTime,
		TotalNodes:       len(t.nodes),
		RootVisits:       root.visits,
		Children:         make([]ChildStat, 0, len(root.children)),
	}
	if secs := t.stats.SearchTime.Seconds(); secs > 0 {
		a.SimulationsPerSecond = float64(t.stats.SimulationsCompleted) / secs
	}

	for _, ci := range root.children {
		child := &t.nodes[ci]
		cs := ChildStat{Move: child.incoming, Visits: child.visits}
		if child.visits > 0 {
			cs.AverageReward = child.totalReward / float32(child.visits)
		}
		if root.visits > 0 {
			cs.Confidence = float32(child.visits) / float32(root.visits)
		}
		a.Children = append(a.Children, cs)
	}

	if ci := t.bestChildByVisits(); ci != noIndex && t.nodes[ci].hasIncoming {
		move := t.nodes[ci].incoming
		a.BestMove = &move
	}
	return a
}

// MemoryStats reports the arena's estimated footprint.
func (t *SearchTree) MemoryStats() MemoryStats {
	per := int(unsafe.Sizeof(node{}))
	return MemoryStats{
		TotalNodes:          len(t.nodes),
		BytesPerNode:        per,
		EstimatedTotalBytes: per * len(t.nodes),
	}
}
