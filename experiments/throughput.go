// Package experiments holds offline harnesses that sweep search budgets
// and self-play games, persisting their records as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"illimat/engine"
	"illimat/experiments/metrics"
	"illimat/game"
	"illimat/searcher"
)

type ThroughputConfig struct {
	Budgets           []uint32
	SearchesPerBudget int
	Seed              uint64
}

// SampleOpening deals a randomized opening position: four cards per hand,
// three loose cards per field, the rest left in the deck. It goes through
// the canonical state and the bridge so the whole conversion path is
// exercised.
func SampleOpening(rng *rand.Rand) game.CompactState {
	deck := make([]game.Card, 0, game.NumCards)
	for id := uint8(0); id < game.NumCards; id++ {
		if c, ok := game.CardFromCompactID(id); ok {
			deck = append(deck, c)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	gs := game.NewGameState()
	gs.Phase = game.PhasePlay
	gs.Round = 1
	for p := 0; p < game.NumPlayers; p++ {
		gs.Hands[p] = append(gs.Hands[p], deck[:4]...)
		deck = deck[4:]
	}
	for f := 0; f < game.NumFields; f++ {
		gs.Fields[f].Cards = append(gs.Fields[f].Cards, deck[:3]...)
		deck = deck[3:]
	}
	gs.Deck = deck
	return game.ToCompact(gs)
}

// RunThroughput sweeps the configured simulation budgets over randomized
// openings and writes one move record per search.
func RunThroughput(cfg ThroughputConfig) ([]metrics.MoveRecord, error) {
	if len(cfg.Budgets) == 0 || cfg.SearchesPerBudget <= 0 {
		return nil, fmt.Errorf("throughput config needs budgets and a positive search count")
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var records []metrics.MoveRecord
	for _, budget := range cfg.Budgets {
		for i := 0; i < cfg.SearchesPerBudget; i++ {
			state := SampleOpening(rng)
			tree := searcher.NewSearchTree(state, searcher.WithSimulations(budget))
			_, ok := tree.Search()
			analysis := tree.Analysis()
			if !ok {
				log.Warn().Uint32("budget", budget).Msg("search returned no move for a dealt opening")
			}
			records = append(records, metrics.MoveRecord{
				Game:   int(budget),
				Step:   i + 1,
				Player: int(state.CurrentPlayer()),
				SearchRecord: metrics.SearchRecord{
					Simulations:          analysis.TotalSimulations,
					Duration:             analysis.SearchTime,
					SimulationsPerSecond: analysis.SimulationsPerSecond,
					TotalNodes:           analysis.TotalNodes,
					RootVisits:           analysis.RootVisits,
				},
			})
		}
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

// RunSelfPlay plays full self-play games at one budget and persists both
// game and move records.
func RunSelfPlay(games int, simulations uint32, seed uint64) ([]metrics.GameRecord, error) {
	if games <= 0 {
		return nil, fmt.Errorf("self-play needs a positive game count")
	}
	rng := rand.New(rand.NewSource(seed))

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i := 0; i < games; i++ {
		e := engine.NewLocalEngine(SampleOpening(rng), searcher.WithSimulations(simulations))
		e.SetGameID(i + 1)

		start := time.Now()
		winner, moves := e.Run()
		end := time.Now()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:        i + 1,
			Winner:    winner,
			Moves:     len(moves),
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
		})
		moveRecords = append(moveRecords, moves...)
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	return gameRecords, nil
}
