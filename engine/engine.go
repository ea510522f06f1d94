package engine

import (
	"senet/experiments/metrics"
	"senet/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
