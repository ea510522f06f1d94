package game

import "fmt"

// Apply validates and plays a move of the referenced piece by roll against gs.
// Rules are resolved in a fixed order; a rejection leaves gs untouched.
func Apply(gs *GameState, ref PieceRef, roll int) (Outcome, error) {
	if err := gs.precheck(ref, roll); err != nil {
		return Outcome{}, err
	}
	piece := &gs.Pieces[ref.Player][ref.Index]
	from := piece.Position
	outcome := Outcome{Piece: ref, From: from}

	// Leaving an exit-conditioned cell
	if piece.PendingExit {
		if !exitAllowed(from, roll) {
			piece.PendingExit = false
			piece.Position = gs.reentryIndex()
			gs.PassTurn()

			outcome.To = piece.Position
			outcome.Events = append(outcome.Events, Event{Kind: SentToReentry, Reason: ForcedExitFailure})
			outcome.Turn = TurnPassed
			mustBeValid(gs)
			return outcome, nil
		}
	}

	target := from + roll
	occupant, captures, err := gs.blocked(ref.Player, from, target)
	if err != nil {
		return Outcome{}, err
	}

	// Committed from here on
	piece.PendingExit = false
	if captures {
		displaced := &gs.Pieces[occupant.Player][occupant.Index]
		displaced.Position = from
		displaced.PendingExit = false
		outcome.Events = append(outcome.Events, Event{Kind: MovedWithCapture, Captured: occupant})
	} else {
		outcome.Events = append(outcome.Events, Event{Kind: Moved})
	}

	if target == ReentryIndex {
		if other, occupied := gs.PieceAt(ReentryIndex); occupied && other != ref {
			target = gs.reentryIndex()
		}
	}

	piece.Position = target

	switch CellAt(target) {
	case ReentryCell, HappinessCell:
		outcome.Events = append(outcome.Events, Event{Kind: LandedOnSpecial, Cell: CellAt(target)})
	case RegressionCell:
		piece.Position = gs.reentryIndex()
		outcome.Events = append(outcome.Events, Event{Kind: SentToReentry, Reason: RegressionLanding})
	case ThreeTruthsCell, ReAtoumCell, HorusCell:
		piece.PendingExit = true
		outcome.Events = append(outcome.Events, Event{Kind: LandedOnSpecial, Cell: CellAt(target)})
	}

	if target >= BoardSize {
		piece.Position = Exited
		gs.Exited[ref.Player]++
		outcome.Events = append(outcome.Events, Event{Kind: PieceExited, Exited: gs.Exited[ref.Player]})
		if gs.Exited[ref.Player] == PIECES {
			outcome.To = Exited
			outcome.Events = append(outcome.Events, Event{Kind: Won, Winner: ref.Player})
			outcome.Turn = GameEnded
			mustBeValid(gs)
			return outcome, nil
		}
	}
	outcome.To = piece.Position

	if ExtraTurn(roll) {
		outcome.Turn = TurnKept
	} else {
		gs.PassTurn()
		outcome.Turn = TurnPassed
	}

	mustBeValid(gs)
	return outcome, nil
}

// CanMove reports whether moving ref by roll is a legal, successful move for the side to move.
// A pending piece rolling the wrong number for its cell is not a legal move: it would be sent back.
func CanMove(gs *GameState, ref PieceRef, roll int) bool {
	if gs.precheck(ref, roll) != nil {
		return false
	}
	p := gs.Pieces[ref.Player][ref.Index]
	if p.PendingExit && !exitAllowed(p.Position, roll) {
		return false
	}
	_, _, err := gs.blocked(ref.Player, p.Position, p.Position+roll)
	return err == nil
}

// LegalMoves lists the pieces of player that can legally move by roll, in roster order.
// The state's side to move is ignored so callers can ask about either side.
func LegalMoves(gs *GameState, player Player, roll int) []PieceRef {
	view := *gs
	view.CurrentPlayer = player

	var moves []PieceRef
	for _, ref := range view.OnTrack(player) {
		if CanMove(&view, ref, roll) {
			moves = append(moves, ref)
		}
	}
	return moves
}

func (gs *GameState) precheck(ref PieceRef, roll int) error {
	if gs.Winner() != NoPlayer {
		return GameOver
	}
	if !ref.valid() || ref.Player != gs.CurrentPlayer {
		return NotYourPiece
	}
	if roll < MinRoll || roll > MaxRoll {
		return NoRollPending
	}
	if !gs.Pieces[ref.Player][ref.Index].OnTrack() {
		return PieceOffTrack
	}
	return nil
}

// blocked applies the boundary and collision rules to a move from -> target.
func (gs *GameState) blocked(player Player, from, target int) (occupant PieceRef, captures bool, err error) {
	if from < HappinessIndex && target > HappinessIndex {
		return PieceRef{}, false, BoundaryBlocked
	}
	occupant, occupied := gs.PieceAt(target)
	if !occupied {
		return PieceRef{}, false, nil
	}
	if occupant.Player == player {
		return PieceRef{}, false, OwnPieceBlocked
	}
	return occupant, true, nil
}

func exitAllowed(index, roll int) bool {
	need, restricted := RequiredExitRoll(index)
	return !restricted || roll == need
}

func mustBeValid(gs *GameState) {
	if err := gs.Validate(); err != nil {
		panic(fmt.Sprintf("rule engine broke an invariant: %v", err))
	}
}
