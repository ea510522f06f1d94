package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestApplyRejections(t *testing.T) {
	cases := []struct {
		name  string
		state *GameState
		ref   PieceRef
		roll  int
		want  Rejection
	}{
		{"moving an opponent piece", NewPosition(PlayerA, []int{10}, []int{3}), PieceRef{PlayerB, 0}, 2, NotYourPiece},
		{"moving a piece outside the roster", NewPosition(PlayerA, []int{10}, []int{3}), PieceRef{PlayerA, PIECES}, 2, NotYourPiece},
		{"moving without a roll", NewPosition(PlayerA, []int{10}, []int{3}), PieceRef{PlayerA, 0}, 0, NoRollPending},
		{"moving with an impossible roll", NewPosition(PlayerA, []int{10}, []int{3}), PieceRef{PlayerA, 0}, 6, NoRollPending},
		{"jumping over happiness by one", NewPosition(PlayerA, []int{24}, []int{3}), PieceRef{PlayerA, 0}, 2, BoundaryBlocked},
		{"jumping over happiness by three", NewPosition(PlayerA, []int{23}, []int{3}), PieceRef{PlayerA, 0}, 5, BoundaryBlocked},
		{"landing on own piece", NewPosition(PlayerA, []int{10, 12}, []int{3}), PieceRef{PlayerA, 0}, 2, OwnPieceBlocked},
		{"moving an exited piece", NewPosition(PlayerA, []int{10}, []int{3}), PieceRef{PlayerA, 1}, 2, PieceOffTrack},
		{"moving after the game is won", NewPosition(PlayerB, []int{}, []int{3}), PieceRef{PlayerB, 0}, 2, GameOver},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := *c.state

			_, err := Apply(c.state, c.ref, c.roll)

			require.ErrorIs(t, err, c.want, "Should reject with the expected reason")
			if diff := cmp.Diff(before, *c.state); diff != "" {
				t.Errorf("state changed on rejection (-before +after):\n%s", diff)
			}
		})
	}
}

func TestApplyMoves(t *testing.T) {
	t.Run("plain move with an even roll passes the turn", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{3}, []int{20})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 4)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: Moved}}, got.Events)
		require.Equal(t, 7, gs.Pieces[PlayerA][0].Position)
		require.Equal(t, TurnPassed, got.Turn)
		require.Equal(t, PlayerB, gs.CurrentPlayer)
	})

	t.Run("plain move with an odd roll keeps the turn", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{3}, []int{20})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 5)

		require.NoError(t, err)
		require.Equal(t, 8, got.To)
		require.Equal(t, TurnKept, got.Turn)
		require.Equal(t, PlayerA, gs.CurrentPlayer)
	})

	t.Run("capturing swaps the opponent onto the former cell", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{10}, []int{12})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 2)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: MovedWithCapture, Captured: PieceRef{PlayerB, 0}}}, got.Events)
		require.Equal(t, 12, gs.Pieces[PlayerA][0].Position)
		require.Equal(t, 10, gs.Pieces[PlayerB][0].Position)
	})

	t.Run("capturing a pending piece clears its flag", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{25}, []int{27})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 2)

		require.NoError(t, err)
		require.True(t, got.Has(MovedWithCapture))
		require.Equal(t, Piece{Owner: PlayerA, Position: 27, PendingExit: true}, gs.Pieces[PlayerA][0])
		require.Equal(t, Piece{Owner: PlayerB, Position: 25}, gs.Pieces[PlayerB][0])
	})

	t.Run("stopping on happiness", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{22}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 3)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: Moved}, {Kind: LandedOnSpecial, Cell: HappinessCell}}, got.Events)
		require.Equal(t, HappinessIndex, got.To)
	})

	t.Run("landing on rebirth", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{10}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 4)

		require.NoError(t, err)
		event, ok := got.Find(LandedOnSpecial)
		require.True(t, ok)
		require.Equal(t, ReentryCell, event.Cell)
	})

	t.Run("landing on water sends the piece to rebirth", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{25}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 1)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: Moved}, {Kind: SentToReentry, Reason: RegressionLanding}}, got.Events)
		require.Equal(t, ReentryIndex, gs.Pieces[PlayerA][0].Position)
		require.Equal(t, TurnKept, got.Turn)
	})

	t.Run("landing on water with rebirth occupied scans backwards", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{25}, []int{14, 13})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 1)

		require.NoError(t, err)
		require.Equal(t, 12, got.To)
		require.Equal(t, 12, gs.Pieces[PlayerA][0].Position)
	})

	t.Run("landing on an exit-conditioned cell marks the piece", func(t *testing.T) {
		for roll, cell := range map[int]Cell{2: ThreeTruthsCell, 3: ReAtoumCell, 4: HorusCell} {
			gs := NewPosition(PlayerA, []int{25}, []int{3})

			got, err := Apply(gs, PieceRef{PlayerA, 0}, roll)

			require.NoError(t, err)
			require.Equal(t, []Event{{Kind: Moved}, {Kind: LandedOnSpecial, Cell: cell}}, got.Events)
			require.True(t, gs.Pieces[PlayerA][0].PendingExit)
		}
	})
}

func TestApplyExits(t *testing.T) {
	t.Run("failing to exit three truths sends the piece back and passes the turn", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{27}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 2)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: SentToReentry, Reason: ForcedExitFailure}}, got.Events)
		require.Equal(t, Piece{Owner: PlayerA, Position: ReentryIndex}, gs.Pieces[PlayerA][0])
		require.Equal(t, TurnPassed, got.Turn)
		require.Equal(t, PlayerB, gs.CurrentPlayer)
	})

	t.Run("failing to exit re-atoum passes the turn even on an odd roll", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{28}, []int{14})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 5)

		require.NoError(t, err)
		require.Equal(t, 13, got.To)
		require.Equal(t, PlayerB, gs.CurrentPlayer)
	})

	t.Run("exiting three truths with a three", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{27, 5}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 3)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: Moved}, {Kind: PieceExited, Exited: 6}}, got.Events)
		require.Equal(t, Exited, got.To)
		require.Equal(t, Piece{Owner: PlayerA, Position: Exited}, gs.Pieces[PlayerA][0])
		require.Equal(t, TurnKept, got.Turn)
	})

	t.Run("exiting re-atoum with a two", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{28, 5}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 2)

		require.NoError(t, err)
		require.True(t, got.Has(PieceExited))
		require.Equal(t, PlayerB, gs.CurrentPlayer)
	})

	t.Run("exiting horus with any roll", func(t *testing.T) {
		for roll := MinRoll; roll <= MaxRoll; roll++ {
			gs := NewPosition(PlayerA, []int{29, 5}, []int{3})

			got, err := Apply(gs, PieceRef{PlayerA, 0}, roll)

			require.NoError(t, err)
			require.True(t, got.Has(PieceExited), "Should exit with roll %d", roll)
		}
	})

	t.Run("exiting from happiness with a five", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{25, 5}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 5)

		require.NoError(t, err)
		require.True(t, got.Has(PieceExited))
	})

	t.Run("exiting the last piece wins", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{29}, []int{3})

		got, err := Apply(gs, PieceRef{PlayerA, 0}, 2)

		require.NoError(t, err)
		require.Equal(t, []Event{{Kind: Moved}, {Kind: PieceExited, Exited: PIECES}, {Kind: Won, Winner: PlayerA}}, got.Events)
		require.Equal(t, GameEnded, got.Turn)
		require.Equal(t, PlayerA, gs.Winner())
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("restricted exits need the exact roll", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{27, 28}, []int{3})

		require.Equal(t, []PieceRef{{PlayerA, 0}}, LegalMoves(gs, PlayerA, 3))
		require.Equal(t, []PieceRef{{PlayerA, 1}}, LegalMoves(gs, PlayerA, 2))
		require.Empty(t, LegalMoves(gs, PlayerA, 4))
	})

	t.Run("blocked pieces are skipped", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{10, 12, 24}, []int{3})

		require.Equal(t, []PieceRef{{PlayerA, 1}}, LegalMoves(gs, PlayerA, 2))
	})

	t.Run("asking for the side not on turn", func(t *testing.T) {
		gs := NewPosition(PlayerA, []int{10}, []int{3, 5})

		require.Equal(t, []PieceRef{{PlayerB, 0}, {PlayerB, 1}}, LegalMoves(gs, PlayerB, 1))
		require.Equal(t, PlayerA, gs.CurrentPlayer, "Should not change the side to move")
	})

	t.Run("no moves once the game is won", func(t *testing.T) {
		gs := NewPosition(PlayerB, []int{}, []int{3})

		require.Empty(t, LegalMoves(gs, PlayerB, 1))
	})
}

func TestRandomPlayouts(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		gs := NewGameState()
		dice := NewRandomDice(seed)
		picker := rand.New(rand.NewSource(seed * 7))

		for step := 0; step < 2000 && gs.Winner() == NoPlayer; step++ {
			roll := dice.Roll()
			mover := gs.CurrentPlayer
			moves := LegalMoves(gs, mover, roll)
			if len(moves) == 0 {
				gs.PassTurn()
				continue
			}

			got, err := Apply(gs, moves[picker.Intn(len(moves))], roll)

			require.NoError(t, err, "Legal moves should never be rejected")
			require.NoError(t, gs.Validate())
			if event, ok := got.Find(SentToReentry); ok {
				require.Equal(t, RegressionLanding, event.Reason, "Legal moves never fail an exit")
				require.LessOrEqual(t, got.To, ReentryIndex)
			}
			switch {
			case got.Turn == GameEnded:
				require.Equal(t, mover, gs.Winner())
			case ExtraTurn(roll):
				require.Equal(t, mover, gs.CurrentPlayer, "Rolls 1, 3 and 5 keep the turn")
			default:
				require.Equal(t, mover.Opponent(), gs.CurrentPlayer, "Rolls 2 and 4 pass the turn")
			}
		}
	}
}
