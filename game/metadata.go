package game

// Packed metadata layout, low bit first. This is a wire format: snapshots
// serialized from one build must unpack identically in another.
//
//	bits  0-1   current player
//	bits  2-3   dealer
//	bits  4-5   board orientation
//	bits  6-9   round number
//	bits 10-25  turn number
//	bits 26-29  season parity, one bit per field
//	bits 30-33  okus held flag, one bit per token
//	bits 34-49  scores, 4 bits per player
//	bits 50-51  game phase
//	bits 52-63  reserved, zero
const (
	currentPlayerShift = 0
	dealerShift        = 2
	orientationShift   = 4
	roundShift         = 6
	turnShift          = 10
	seasonParityShift  = 26
	okusHeldShift      = 30
	scoresShift        = 34
	phaseShift         = 50

	twoBitMask  = 0x3
	fourBitMask = 0xF

	maxTurn  = 1<<16 - 1
	maxRound = fourBitMask
	maxScore = fourBitMask
)

type Phase uint8

const (
	PhaseSetup Phase = iota
	PhasePlay
	PhaseRoundEnd
	PhaseGameOver
)

// Metadata is the unpacked view of the packed metadata word.
type Metadata struct {
	CurrentPlayer uint8
	Dealer        uint8
	Orientation   uint8
	Round         uint8
	Turn          uint16
	SeasonParity  [NumFields]bool
	OkusHeld      [NumOkus]bool
	Scores        [NumPlayers]uint8
	Phase         Phase
}

// PackMetadata packs the fields into one word. Values wider than their bit
// range are truncated to it.
func PackMetadata(m Metadata) uint64 {
	w := uint64(m.CurrentPlayer&twoBitMask) << currentPlayerShift
	w |= uint64(m.Dealer&twoBitMask) << dealerShift
	w |= uint64(m.Orientation&twoBitMask) << orientationShift
	w |= uint64(m.Round&fourBitMask) << roundShift
	w |= uint64(m.Turn) << turnShift
	for f := 0; f < NumFields; f++ {
		if m.SeasonParity[f] {
			w |= uint64(1) << (seasonParityShift + f)
		}
	}
	for i := 0; i < NumOkus; i++ {
		if m.OkusHeld[i] {
			w |= uint64(1) << (okusHeldShift + i)
		}
	}
	for p := 0; p < NumPlayers; p++ {
		w |= uint64(m.Scores[p]&fourBitMask) << (scoresShift + 4*p)
	}
	w |= uint64(uint8(m.Phase)&twoBitMask) << phaseShift
	return w
}

// UnpackMetadata is the inverse of PackMetadata.
func UnpackMetadata(w uint64) Metadata {
	m := Metadata{
		CurrentPlayer: uint8(w>>currentPlayerShift) & twoBitMask,
		Dealer:        uint8(w>>dealerShift) & twoBitMask,
		Orientation:   uint8(w>>orientationShift) & twoBitMask,
		Round:         uint8(w>>roundShift) & fourBitMask,
		Turn:          uint16(w >> turnShift),
		Phase:         Phase(uint8(w>>phaseShift) & twoBitMask),
	}
	for f := 0; f < NumFields; f++ {
		m.SeasonParity[f] = w&(uint64(1)<<(seasonParityShift+f)) != 0
	}
	for i := 0; i < NumOkus; i++ {
		m.OkusHeld[i] = w&(uint64(1)<<(okusHeldShift+i)) != 0
	}
	for p := 0; p < NumPlayers; p++ {
		m.Scores[p] = uint8(w>>(scoresShift+4*p)) & fourBitMask
	}
	return m
}
