package searcher

import (
	"fmt"
	"senet/experiments/metrics"
	"senet/game"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// walker evaluates the subtree below one root candidate.
type walker struct {
	maximizer game.Player
	evaluate  game.Evaluate
	metrics   metrics.Collector
	tracer    tracer
}

func (w *walker) value(s *game.GameState, depth int) float64 {
	w.metrics.AddNode()

	if winner := s.Winner(); winner != game.NoPlayer {
		w.metrics.AddTerminal()
		v := LOSS
		if winner == w.maximizer {
			v = WIN
		}
		w.tracer.record(Step{Kind: TerminalNode, Depth: depth, Player: winner, Value: v})
		return v
	}

	if depth == 0 {
		w.metrics.AddLeaf()
		v := w.evaluate(s, w.maximizer)
		w.tracer.record(Step{Kind: LeafNode, Player: s.CurrentPlayer, Value: v})
		return v
	}

	return w.chance(s, depth)
}

// chance averages over every roll, each equally likely, for the side to move.
func (w *walker) chance(s *game.GameState, depth int) float64 {
	w.metrics.AddChance()
	player := s.CurrentPlayer

	outcomes := make([]float64, 0, game.MaxRoll-game.MinRoll+1)
	for roll := game.MinRoll; roll <= game.MaxRoll; roll++ {
		outcomes = append(outcomes, w.resolve(s, player, roll, depth))
	}
	v := expectation(outcomes)

	w.tracer.record(Step{Kind: ChanceNode, Depth: depth, Player: player, Value: v})
	return v
}

// resolve picks player's best reply to roll: a max node for the maximizer, a min node otherwise.
func (w *walker) resolve(s *game.GameState, player game.Player, roll int, depth int) float64 {
	moves := game.LegalMoves(s, player, roll)
	if len(moves) == 0 {
		next := s.Copy()
		next.PassTurn()
		v := w.value(next, depth-1)
		w.tracer.record(Step{Kind: PassNode, Depth: depth, Player: player, Roll: roll, Value: v})
		return v
	}

	kind := MinNode
	if player == w.maximizer {
		kind = MaxNode
	}

	var best float64
	for i, ref := range moves {
		child := s.Copy()
		if _, err := game.Apply(child, ref, roll); err != nil {
			panic(fmt.Sprintf("legal move %s with roll %d was rejected: %v", ref, roll, err))
		}
		v := w.value(child, depth-1)
		if i == 0 || (kind == MaxNode && v > best) || (kind == MinNode && v < best) {
			best = v
		}
	}

	w.tracer.record(Step{Kind: kind, Depth: depth, Player: player, Roll: roll, Value: best})
	return best
}

// expectation is the mean of equally likely outcomes. A forced win and a forced loss
// under the same chance node cancel out to 0 instead of NaN.
func expectation(outcomes []float64) float64 {
	if slices.Contains(outcomes, WIN) && slices.Contains(outcomes, LOSS) {
		return 0
	}
	return floats.Sum(outcomes) / float64(len(outcomes))
}
