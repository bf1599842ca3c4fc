package metrics

import "time"

// SearchRecord captures one search invocation's headline statistics, taken
// from the searcher's analysis output.
type SearchRecord struct {
	Simulations          uint32
	Duration             time.Duration
	SimulationsPerSecond float64
	TotalNodes           int
	RootVisits           uint32
}

// MoveRecord ties a search record to its place in a self-play game.
type MoveRecord struct {
	Game   int
	Step   int
	Player int
	SearchRecord
}

// GameRecord summarizes one finished self-play game.
type GameRecord struct {
	ID        int
	Winner    int
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
