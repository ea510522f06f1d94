package searcher

import "math"

// Values of decided games
var (
	WIN  = math.Inf(1)
	LOSS = math.Inf(-1)
)

// NodeKind labels a node of the expectiminimax tree.
type NodeKind int

const (
	RootNode NodeKind = iota
	MaxNode
	MinNode
	ChanceNode
	PassNode // No legal move for the roll, turn handed over
	LeafNode
	TerminalNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "root"
	case MaxNode:
		return "max"
	case MinNode:
		return "min"
	case ChanceNode:
		return "chance"
	case PassNode:
		return "pass"
	case LeafNode:
		return "leaf"
	case TerminalNode:
		return "terminal"
	default:
		return "unknown"
	}
}
