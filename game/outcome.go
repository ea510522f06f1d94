package game

// Rejection is the closed set of reasons a move is refused. State is unchanged on every rejection.
type Rejection int

const (
	NotYourPiece Rejection = iota + 1
	NoRollPending
	BoundaryBlocked
	OwnPieceBlocked
	PieceOffTrack
	GameOver
)

func (r Rejection) Error() string {
	switch r {
	case NotYourPiece:
		return "cannot move: piece does not belong to the player to move"
	case NoRollPending:
		return "cannot move: no roll pending"
	case BoundaryBlocked:
		return "cannot move: must stop on the House of Happiness"
	case OwnPieceBlocked:
		return "cannot move: own piece occupies the target"
	case PieceOffTrack:
		return "cannot move: piece has already exited"
	case GameOver:
		return "game is over - no moves allowed"
	default:
		return "cannot move: unknown reason"
	}
}

type EventKind int

const (
	Moved EventKind = iota
	MovedWithCapture
	SentToReentry
	LandedOnSpecial
	PieceExited
	Won
)

// SendBackReason tells why a piece was sent to the Re-entry cell.
type SendBackReason int

const (
	ForcedExitFailure SendBackReason = iota + 1
	RegressionLanding
)

// Event is one observable effect of a move, in the order it happened.
type Event struct {
	Kind     EventKind
	Captured PieceRef       // MovedWithCapture: the displaced opponent
	Reason   SendBackReason // SentToReentry
	Cell     Cell           // LandedOnSpecial
	Exited   int            // PieceExited: the new exited count
	Winner   Player         // Won
}

// TurnChange is how the turn resolved after a committed move.
type TurnChange int

const (
	TurnPassed TurnChange = iota
	TurnKept              // Extra turn for the mover
	GameEnded
)

// Outcome reports a committed move.
type Outcome struct {
	Piece  PieceRef
	From   int
	To     int // Final index, Exited if the piece left the board
	Events []Event
	Turn   TurnChange
}

// Find returns the first event of the given kind.
func (o Outcome) Find(kind EventKind) (Event, bool) {
	for _, e := range o.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func (o Outcome) Has(kind EventKind) bool {
	_, ok := o.Find(kind)
	return ok
}
