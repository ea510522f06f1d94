package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// GameState is the dynamic state of a game: both rosters, the side on turn and the
// exited counters. Rosters are fixed-size arrays so a plain value copy is a deep copy.
type GameState struct {
	Pieces        [2][PIECES]Piece // Rosters indexed by player then slot
	CurrentPlayer Player           // The side to move
	Exited        [2]int           // Exited pieces per player
}

// NewGameState returns the initial position: both sides interleaved across indices 0..13,
// PlayerA on the even cells, PlayerA to move.
func NewGameState() *GameState {
	gs := &GameState{CurrentPlayer: PlayerA}
	pos := 0
	for i := 0; i < PIECES; i++ {
		gs.Pieces[PlayerA][i] = Piece{Owner: PlayerA, Position: pos}
		pos++
		gs.Pieces[PlayerB][i] = Piece{Owner: PlayerB, Position: pos}
		pos++
	}
	return gs
}

// NewPosition builds an arbitrary position from the on-track indices of each side; the
// remaining pieces count as exited. Pieces on exit-conditioned cells are marked pending.
func NewPosition(current Player, positionsA, positionsB []int) *GameState {
	gs := &GameState{CurrentPlayer: current}
	for player, positions := range [][]int{positionsA, positionsB} {
		if len(positions) > PIECES {
			panic(fmt.Sprintf("%s cannot have %d pieces", Player(player), len(positions)))
		}
		for i := range gs.Pieces[player] {
			gs.Pieces[player][i] = Piece{Owner: Player(player), Position: Exited}
		}
		for i, pos := range positions {
			gs.Pieces[player][i] = Piece{Owner: Player(player), Position: pos, PendingExit: IsExitConditioned(pos)}
		}
		gs.Exited[player] = PIECES - len(positions)
	}
	if err := gs.Validate(); err != nil {
		panic(err)
	}
	return gs
}

// Copy returns an independent snapshot of the state.
func (gs *GameState) Copy() *GameState {
	snapshot := *gs
	return &snapshot
}

// Piece returns the piece addressed by ref.
func (gs *GameState) Piece(ref PieceRef) Piece {
	return gs.Pieces[ref.Player][ref.Index]
}

// PieceAt returns the piece occupying a track index, if any.
func (gs *GameState) PieceAt(index int) (PieceRef, bool) {
	if index < 0 || index >= BoardSize {
		return PieceRef{}, false
	}
	for player := range gs.Pieces {
		for i, p := range gs.Pieces[player] {
			if p.Position == index {
				return PieceRef{Player: Player(player), Index: i}, true
			}
		}
	}
	return PieceRef{}, false
}

// OnTrack returns references to the on-track pieces of player in roster order.
func (gs *GameState) OnTrack(player Player) []PieceRef {
	refs := make([]PieceRef, 0, PIECES)
	for i, p := range gs.Pieces[player] {
		if p.OnTrack() {
			refs = append(refs, PieceRef{Player: player, Index: i})
		}
	}
	return refs
}

// Winner returns the side that has exited all its pieces, or NoPlayer.
func (gs *GameState) Winner() Player {
	for player, exited := range gs.Exited {
		if exited == PIECES {
			return Player(player)
		}
	}
	return NoPlayer
}

// PassTurn hands the turn to the opponent without moving.
func (gs *GameState) PassTurn() {
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
}

// reentryIndex finds the first free index scanning back from the Re-entry cell, 0 if all are taken.
func (gs *GameState) reentryIndex() int {
	for index := ReentryIndex; index >= 0; index-- {
		if _, occupied := gs.PieceAt(index); !occupied {
			return index
		}
	}
	return 0
}

// Validate checks the structural invariants of the state.
func (gs *GameState) Validate() error {
	var occupied [BoardSize]bool
	for player := range gs.Pieces {
		onTrack := 0
		for i, p := range gs.Pieces[player] {
			if p.Owner != Player(player) {
				return fmt.Errorf("piece %d of %s is owned by %s", i, Player(player), p.Owner)
			}
			if p.Position == Exited {
				if p.PendingExit {
					return fmt.Errorf("exited piece %d of %s is pending exit", i, Player(player))
				}
				continue
			}
			if !p.OnTrack() {
				return fmt.Errorf("piece %d of %s is at invalid index %d", i, Player(player), p.Position)
			}
			if occupied[p.Position] {
				return fmt.Errorf("index %d is occupied twice", p.Position)
			}
			occupied[p.Position] = true
			if p.PendingExit && !IsExitConditioned(p.Position) {
				return fmt.Errorf("piece %d of %s is pending exit at index %d", i, Player(player), p.Position)
			}
			onTrack++
		}
		if onTrack+gs.Exited[player] != PIECES {
			return fmt.Errorf("%s has %d pieces on track and %d exited", Player(player), onTrack, gs.Exited[player])
		}
	}
	return nil
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for player := range gs.Pieces {
		binary.Write(hasher, binary.LittleEndian, int64(gs.Exited[player]))
		for _, p := range gs.Pieces[player] {
			binary.Write(hasher, binary.LittleEndian, int64(p.Position))
			binary.Write(hasher, binary.LittleEndian, p.PendingExit)
		}
	}

	return StateHash(hasher.Sum64())
}
