package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStockpileRoundTrip(t *testing.T) {
	piles := []Stockpile{{A: 3, B: 17}, {A: 0, B: 63}, {A: 40, B: 41}}
	word, dropped := PackStockpiles(piles)
	require.Zero(t, dropped)
	require.Equal(t, piles, UnpackStockpiles(word))
}

func TestStockpileEmptyWord(t *testing.T) {
	require.Empty(t, UnpackStockpiles(0), "an all-zero word has no stockpiles")
}

func TestStockpileOverflowDropped(t *testing.T) {
	piles := []Stockpile{{A: 2, B: 9}, {A: OverflowID, B: 10}, {A: 11, B: 12}}
	word, dropped := PackStockpiles(piles)
	require.Equal(t, 1, dropped, "the pairing touching the overflow card is dropped")
	require.Equal(t, []Stockpile{{A: 2, B: 9}, {A: 11, B: 12}}, UnpackStockpiles(word),
		"remaining pairings must survive untouched")
}

func TestStockpileSlotCapacity(t *testing.T) {
	piles := make([]Stockpile, 0, StockpileSlots+2)
	for i := 0; i < StockpileSlots+2; i++ {
		piles = append(piles, Stockpile{A: uint8(2 * i), B: uint8(2*i + 1)})
	}
	word, dropped := PackStockpiles(piles)
	require.Equal(t, 2, dropped, "pairings past the slot count are dropped")
	require.Equal(t, piles[:StockpileSlots], UnpackStockpiles(word))
}
