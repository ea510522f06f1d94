package agent

import (
	"senet/experiments/metrics"
	"senet/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among the legal moves.
// It is not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState, roll int) (game.PieceRef, bool, metrics.SearchMetric) {
	moves := game.LegalMoves(state, state.CurrentPlayer, roll)
	if len(moves) == 0 {
		return game.PieceRef{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], true, metrics.SearchMetric{Candidates: len(moves)}
}
