package agent

import (
	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher"
)

type searchAgent struct {
	search *searcher.Expectiminimax
}

// NewSearchAgent returns an agent playing the best expectiminimax move.
func NewSearchAgent(search *searcher.Expectiminimax) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindMove(state *game.GameState, roll int) (game.PieceRef, bool, metrics.SearchMetric) {
	result := a.search.Search(state, state.CurrentPlayer, roll)
	return result.Piece, result.Found, result.Metric
}
