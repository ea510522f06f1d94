package game

// BoardSize is the number of cells on the track. Index BoardSize and beyond means off the board.
const BoardSize = 30

// Cell identifies the rule a track index carries.
type Cell int

const (
	PlainCell      Cell = iota
	ReentryCell         // House of Rebirth, destination of pieces sent back
	HappinessCell       // House of Happiness, every piece must stop here
	RegressionCell      // House of Water, sends the piece back to the Re-entry cell
	ThreeTruthsCell     // Exit only with a 3
	ReAtoumCell         // Exit only with a 2
	HorusCell           // Exit with any roll
)

// Topology indices
const (
	ReentryIndex     = 14
	HappinessIndex   = 25
	RegressionIndex  = 26
	ThreeTruthsIndex = 27
	ReAtoumIndex     = 28
	HorusIndex       = 29
)

type cellRule struct {
	cell     Cell
	exitRoll int     // Roll required to leave the board from this cell, 0 if any roll will do
	weight   float64 // Evaluator bonus for a piece resting on this cell
}

// topology is the single table of special cells consulted by legality, Apply and the evaluator.
var topology = map[int]cellRule{
	ReentryIndex:     {cell: ReentryCell},
	HappinessIndex:   {cell: HappinessCell, weight: 50},
	RegressionIndex:  {cell: RegressionCell, weight: -20},
	ThreeTruthsIndex: {cell: ThreeTruthsCell, exitRoll: 3, weight: 40},
	ReAtoumIndex:     {cell: ReAtoumCell, exitRoll: 2, weight: 40},
	HorusIndex:       {cell: HorusCell, weight: 50},
}

// CellAt returns the rule carried by a track index.
func CellAt(index int) Cell {
	return topology[index].cell
}

// IsExitConditioned reports whether landing on index marks the piece as pending exit.
func IsExitConditioned(index int) bool {
	switch CellAt(index) {
	case ThreeTruthsCell, ReAtoumCell, HorusCell:
		return true
	}
	return false
}

// RequiredExitRoll returns the roll a pending piece needs to leave from index, and
// whether the cell restricts the roll at all.
func RequiredExitRoll(index int) (roll int, restricted bool) {
	rule := topology[index]
	return rule.exitRoll, rule.exitRoll != 0
}

// CellWeight returns the evaluator bonus (or penalty) for occupying index.
func CellWeight(index int) float64 {
	return topology[index].weight
}

func (c Cell) String() string {
	switch c {
	case ReentryCell:
		return "rebirth"
	case HappinessCell:
		return "happiness"
	case RegressionCell:
		return "water"
	case ThreeTruthsCell:
		return "three-truths"
	case ReAtoumCell:
		return "re-atoum"
	case HorusCell:
		return "horus"
	default:
		return "plain"
	}
}
