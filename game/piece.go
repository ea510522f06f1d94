package game

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	NoPlayer Player = iota - 1
	PlayerA
	PlayerB
)

// PIECES is the roster size of each side.
const PIECES = 7

// Exited marks a piece that has left the board.
const Exited = -1

// Piece is a single counter on the track.
type Piece struct {
	Owner       Player
	Position    int  // Track index, or Exited
	PendingExit bool // Set while resting on an exit-conditioned cell
}

func (p Piece) OnTrack() bool {
	return p.Position >= 0 && p.Position < BoardSize
}

// PieceRef addresses a piece by owner and roster slot.
type PieceRef struct {
	Player Player
	Index  int
}

func (r PieceRef) String() string {
	return fmt.Sprintf("%s#%d", r.Player, r.Index)
}

func (r PieceRef) valid() bool {
	return (r.Player == PlayerA || r.Player == PlayerB) && r.Index >= 0 && r.Index < PIECES
}

func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "Player1"
	case PlayerB:
		return "Player2"
	default:
		return ""
	}
}
