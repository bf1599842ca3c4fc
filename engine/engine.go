// Package engine drives self-play games over the compact representation,
// standing in for the host layer that would normally own the search API.
package engine

import "illimat/experiments/metrics"

// MaxMoves caps a self-play game so a degenerate position can never spin
// the loop forever.
const MaxMoves = 1000

type Engine interface {
	// Run plays until no mover has an applicable move or the move cap is
	// reached, and returns the winner with per-move search records.
	Run() (winner int, moves []metrics.MoveRecord)
}
