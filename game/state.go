package game

type Season uint8

const (
	SeasonWinter Season = iota
	SeasonSpring
	SeasonSummer
	SeasonAutumn
)

func (s Season) String() string {
	switch s {
	case SeasonWinter:
		return "Winter"
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	}
	return "Season(?)"
}

// Field is one of the four board fields on the canonical side: its loose
// face-up cards plus any stockpiles built in it.
type Field struct {
	Cards      []Card
	Stockpiles []Stockpile
}

// GameState is the canonical (uncompressed) game representation the compact
// core bridges to and from. Full legality checking, scoring, and the
// Luminary overlay live in the external rules engine; this type carries
// just enough structure for the bridge contract.
type GameState struct {
	Fields   [NumFields]Field
	Hands    [NumPlayers][]Card
	Harvests [NumPlayers][]Card
	Deck     []Card

	Seasons [NumFields]Season

	// OkusOwners holds the owning player per okus token, or -1 while the
	// token still sits on the Illimat.
	OkusOwners [NumOkus]int

	CurrentPlayer int
	Dealer        int
	Orientation   int
	Round         int
	Turn          int
	Scores        [NumPlayers]int
	Phase         Phase
}

// NewGameState returns an empty canonical state with every okus unclaimed.
func NewGameState() *GameState {
	gs := &GameState{}
	for i := range gs.OkusOwners {
		gs.OkusOwners[i] = -1
	}
	return gs
}

// Copy returns a deep copy of the canonical state.
func (gs *GameState) Copy() *GameState {
	out := *gs
	for f := range gs.Fields {
		out.Fields[f].Cards = append([]Card(nil), gs.Fields[f].Cards...)
		out.Fields[f].Stockpiles = append([]Stockpile(nil), gs.Fields[f].Stockpiles...)
	}
	for p := range gs.Hands {
		out.Hands[p] = append([]Card(nil), gs.Hands[p]...)
		out.Harvests[p] = append([]Card(nil), gs.Harvests[p]...)
	}
	out.Deck = append([]Card(nil), gs.Deck...)
	return &out
}
