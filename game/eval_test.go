package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePosition(t *testing.T) {
	t.Run("initial position favours the side further ahead", func(t *testing.T) {
		gs := NewGameState()
		// PlayerB holds 1,3,...,13 and PlayerA 0,2,...,12
		require.Equal(t, -7.0, EvaluatePosition(gs, PlayerA))
		require.Equal(t, 7.0, EvaluatePosition(gs, PlayerB))
	})

	t.Run("weights exits, cells and pending flags", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{25, 27}, []int{10})
		// 1000*(5-6) + (25+50) + (27+40+30) - 10
		require.Equal(t, -838.0, EvaluatePosition(gs, PlayerA))
		require.Equal(t, 838.0, EvaluatePosition(gs, PlayerB))
	})

	t.Run("penalises water and rewards horus", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{29}, []int{20})
		gs.Pieces[PlayerB][0].Position = RegressionIndex
		// 1000*(6-6) + (29+50+30) - (26-20)
		require.Equal(t, 103.0, EvaluatePosition(gs, PlayerA))
	})
}
