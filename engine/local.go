package engine

import (
	"github.com/rs/zerolog/log"

	"illimat/experiments/metrics"
	"illimat/game"
	"illimat/searcher"
)

// LocalEngine plays every seat with the same search configuration, one
// fresh tree per move, entirely over the compact representation.
type LocalEngine struct {
	state   game.CompactState
	options []searcher.Option
	gameID  int
}

func NewLocalEngine(start game.CompactState, options ...searcher.Option) *LocalEngine {
	return &LocalEngine{state: start, options: options}
}

// SetGameID tags the emitted move records with a game identifier.
func (e *LocalEngine) SetGameID(id int) { e.gameID = id }

func (e *LocalEngine) Run() (int, []metrics.MoveRecord) {
	log.Info().Uint8("player", e.state.CurrentPlayer()).Msg("self-play game starting")

	var records []metrics.MoveRecord
	for step := 1; step <= MaxMoves; step++ {
		player := e.state.CurrentPlayer()

		tree := searcher.NewSearchTree(e.state, e.options...)
		move, ok := tree.Search()
		analysis := tree.Analysis()
		records = append(records, metrics.MoveRecord{
			Game:   e.gameID,
			Step:   step,
			Player: int(player),
			SearchRecord: metrics.SearchRecord{
				Simulations:          analysis.TotalSimulations,
				Duration:             analysis.SearchTime,
				SimulationsPerSecond: analysis.SimulationsPerSecond,
				TotalNodes:           analysis.TotalNodes,
				RootVisits:           analysis.RootVisits,
			},
		})
		if !ok {
			log.Info().Int("step", step).Msg("no applicable moves; game over")
			break
		}

		next, applied := game.Apply(e.state, move)
		if !applied {
			// The search only recommends moves it already applied once, so
			// a rejection here means the engine state drifted.
			log.Warn().Int("step", step).Stringer("move", move).Msg("recommended move rejected; aborting game")
			break
		}
		// Replenish the mover's hand; an exhausted deck deals fewer.
		next = game.DealToHand(next, player, 1)
		e.state = game.AdvanceTurn(next)
	}

	winner := e.winner()
	log.Info().Int("winner", winner).Int("moves", len(records)).Msg("self-play game over")
	return winner, records
}

// winner ranks players by harvested cards, breaking ties by packed score.
func (e *LocalEngine) winner() int {
	meta := game.UnpackMetadata(e.state.Metadata)
	best := 0
	bestKey := -1
	for p := 0; p < game.NumPlayers; p++ {
		key := e.state.PlayerHarvests[p].Count()<<4 | int(meta.Scores[p])
		if key > bestKey {
			bestKey = key
			best = p
		}
	}
	return best
}
