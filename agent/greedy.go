package agent

import (
	"senet/experiments/metrics"
	"senet/game"
)

// Greedy scoring
const (
	exitScore    = 1000
	captureScore = 30
)

type greedyAgent struct{}

// NewGreedyAgent returns an agent playing the legal move with the best one-ply score.
// Exits outrank everything else.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (a greedyAgent) FindMove(state *game.GameState, roll int) (game.PieceRef, bool, metrics.SearchMetric) {
	moves := game.LegalMoves(state, state.CurrentPlayer, roll)
	if len(moves) == 0 {
		return game.PieceRef{}, false, metrics.SearchMetric{}
	}

	best := moves[0]
	bestScore := scoreMove(state, best, roll)
	for _, ref := range moves[1:] {
		if score := scoreMove(state, ref, roll); score > bestScore {
			best, bestScore = ref, score
		}
	}
	return best, true, metrics.SearchMetric{Candidates: len(moves)}
}

func scoreMove(gs *game.GameState, ref game.PieceRef, roll int) float64 {
	target := gs.Piece(ref).Position + roll
	if target >= game.BoardSize {
		return exitScore
	}

	score := float64(target) + game.CellWeight(target)
	if occupant, ok := gs.PieceAt(target); ok && occupant.Player != ref.Player {
		score += captureScore
	}
	return score
}
