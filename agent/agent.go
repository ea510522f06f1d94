package agent

import (
	"senet/experiments/metrics"
	"senet/game"
)

type Agent interface {
	// FindMove returns the piece the side to move plays with roll, false if it has to pass,
	// and the search metrics (if collected) behind the decision
	FindMove(state *game.GameState, roll int) (game.PieceRef, bool, metrics.SearchMetric)
}
