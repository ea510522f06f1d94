package game

// Rolls drawn from the throwing sticks
const (
	MinRoll = 1
	MaxRoll = 5
)

// Evaluates the game state to a heuristic score from the perspective player's
// point of view: positive favours perspective, negative favours the opponent.
type Evaluate func(gs *GameState, perspective Player) float64

// ExtraTurn reports whether a roll keeps the mover on turn, regardless of what the move did.
func ExtraTurn(roll int) bool {
	return roll == 1 || roll == 3 || roll == 5
}
