package searcher

import "senet/game"

// Step records one evaluated node. Steps are appended in post-order, children before parents.
type Step struct {
	Kind   NodeKind
	Depth  int // Remaining depth at the node
	Player game.Player
	Roll   int           // Roll being resolved, 0 for leaves, terminals and chance nodes
	Piece  game.PieceRef // Root candidate, root steps only
	Value  float64
}

type tracer struct {
	enabled bool
	steps   []Step
}

func (t *tracer) record(step Step) {
	if t.enabled {
		t.steps = append(t.steps, step)
	}
}
