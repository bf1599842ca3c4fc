package game

import "fmt"

type Suit uint8

const (
	SuitSpring Suit = iota
	SuitSummer
	SuitAutumn
	SuitWinter
	SuitStars
)

func (s Suit) String() string {
	switch s {
	case SuitSpring:
		return "Spring"
	case SuitSummer:
		return "Summer"
	case SuitAutumn:
		return "Autumn"
	case SuitWinter:
		return "Winter"
	case SuitStars:
		return "Stars"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

type Rank uint8

const (
	RankFool Rank = iota
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankKnight
	RankQueen
	RankKing
)

const (
	NumSuits     = 5
	RanksPerSuit = 13
	NumCards     = NumSuits * RanksPerSuit // 65

	// OverflowID is the one compact id (the Stars King) that does not fit
	// in a 64-bit location set. It is tracked through the overflow bitmap
	// only, never through the plain bitsets.
	OverflowID uint8 = 64
)

// Card identifies one of the 65 deck cards by suit and rank.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s-%d", c.Suit, c.Rank)
}

// CompactID maps a card to its compact id: suit*13 + rank, in 0..64.
func CompactID(c Card) uint8 {
	return uint8(c.Suit)*RanksPerSuit + uint8(c.Rank)
}

// CardFromCompactID is the inverse of CompactID. It reports false for ids
// outside 0..64.
func CardFromCompactID(id uint8) (Card, bool) {
	if id >= NumCards {
		return Card{}, false
	}
	return Card{Suit: Suit(id / RanksPerSuit), Rank: Rank(id % RanksPerSuit)}, true
}

// IsOverflow reports whether the card is the single card whose compact id
// cannot be represented in a 64-bit set.
func (c Card) IsOverflow() bool {
	return CompactID(c) == OverflowID
}
