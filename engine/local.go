package engine

import (
	"fmt"
	"senet/agent"
	"senet/experiments/metrics"
	"senet/game"
	"senet/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local runs both agents in-process, one roll per turn.
type Local struct {
	State    *game.GameState
	agents   []agent.Agent // Indexed by game.Player
	dice     game.Dice
	maxTurns int
}

func WithMaxTurns(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

func WithStartingPlayer(p game.Player) Option {
	return func(e *Local) {
		e.State.CurrentPlayer = p
	}
}

// WithInitialState starts from a copy of gs instead of the standard opening.
func WithInitialState(gs *game.GameState) Option {
	return func(e *Local) {
		e.State = gs.Copy()
	}
}

func LocalEngine(agents []agent.Agent, dice game.Dice, options ...Option) *Local {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}

	e := &Local{
		State:    game.NewGameState(),
		agents:   agents,
		dice:     dice,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a winner is found or the turn limit is hit.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.CurrentPlayer)

	turn := 0
	for e.State.Winner() == game.NoPlayer && turn < e.maxTurns {
		turn++
		player := e.State.CurrentPlayer
		roll := e.dice.Roll()

		piece, ok, searchMetric := e.agents[player].FindMove(e.State.Copy(), roll)
		piece, ok = e.legalize(piece, ok, roll)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Roll:         roll,
			Passed:       !ok,
			SearchMetric: searchMetric,
		})

		if !ok {
			e.State.PassTurn()
			log.Debug().Int("turn", turn).Str("player", player.String()).Int("roll", roll).Msg("no legal move, turn passed")
			continue
		}

		outcome, err := game.Apply(e.State, piece, roll)
		if err != nil {
			panic(fmt.Sprintf("legal move %s with roll %d was rejected: %v", piece, roll, err))
		}
		log.Debug().
			Int("turn", turn).
			Str("piece", piece.String()).
			Int("roll", roll).
			Int("from", outcome.From).
			Int("to", outcome.To).
			Uint64("hash", uint64(e.State.Hash())).
			Msg("move played")
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn

	if winner != game.NoPlayer {
		log.Info().Int("turns", turn).Msgf("game ended with winner %s", winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", turn)
	}

	return winner, gameMetric, moveMetrics
}

// legalize replaces an illegal or missing answer by the first legal move, if there is one.
func (e *Local) legalize(piece game.PieceRef, ok bool, roll int) (game.PieceRef, bool) {
	if ok && game.CanMove(e.State, piece, roll) {
		return piece, true
	}
	moves := game.LegalMoves(e.State, e.State.CurrentPlayer, roll)
	if len(moves) == 0 {
		return game.PieceRef{}, false
	}
	log.Warn().
		Str("player", e.State.CurrentPlayer.String()).
		Int("roll", roll).
		Bool("answered", ok).
		Str("piece", piece.String()).
		Msgf("agent gave no legal move, falling back to %s", moves[0])
	return moves[0], true
}
