package game

// Heuristic weights
const (
	ExitedWeight      = 1000.0
	PendingExitWeight = 30.0
)

// EvaluatePosition scores exited pieces, track progress, special-cell occupation and
// pending exits, counting the perspective player's pieces positively and the opponent's negatively.
func EvaluatePosition(gs *GameState, perspective Player) float64 {
	opponent := perspective.Opponent()
	score := ExitedWeight * float64(gs.Exited[perspective]-gs.Exited[opponent])

	for player := range gs.Pieces {
		sign := 1.0
		if Player(player) != perspective {
			sign = -1.0
		}
		for _, p := range gs.Pieces[player] {
			if !p.OnTrack() {
				continue
			}
			score += sign * (float64(p.Position) + CellWeight(p.Position))
			if p.PendingExit {
				score += sign * PendingExitWeight
			}
		}
	}
	return score
}
