package searcher

import (
	"fmt"
	"senet/experiments/metrics"
	"senet/game"
	"senet/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(e *Expectiminimax)

// Expectiminimax picks moves by a depth-limited search over max, min and chance nodes.
// Every branch works on its own copy of the state; the caller's state is never touched.
type Expectiminimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	trace      bool
	metrics    metrics.Collector
}

// Candidate is a legal root move with its searched value.
type Candidate struct {
	Piece game.PieceRef
	Value float64
}

type Result struct {
	Piece      game.PieceRef
	Found      bool // False when no piece can move with the roll
	Value      float64
	Candidates []Candidate // In roster order
	Trace      []Step      // Only with WithTrace
	Metric     metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(e *Expectiminimax) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithGoroutines searches root candidates concurrently, at most n at a time.
func WithGoroutines(n int) Option {
	return func(e *Expectiminimax) {
		if n > 0 {
			e.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectiminimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithTrace() Option {
	return func(e *Expectiminimax) {
		e.trace = true
	}
}

func WithMetrics() Option {
	return func(e *Expectiminimax) {
		e.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Expectiminimax {
	e := &Expectiminimax{ // Default values
		depth:      meta.DEFAULT_DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.EvaluatePosition,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectiminimax) Depth() int {
	return e.depth
}

// SelectMove returns the piece mover should play with roll, or false if the turn must be passed.
func (e *Expectiminimax) SelectMove(state *game.GameState, mover game.Player, roll int) (game.PieceRef, bool) {
	result := e.Search(state, mover, roll)
	return result.Piece, result.Found
}

// Search evaluates every legal move of mover for roll and returns the best one.
// Ties keep the first candidate in roster order.
func (e *Expectiminimax) Search(state *game.GameState, mover game.Player, roll int) Result {
	start := time.Now()
	e.metrics.Start(e.depth, e.goroutines)

	root := state.Copy()
	root.CurrentPlayer = mover
	moves := game.LegalMoves(root, mover, roll)
	e.metrics.SetCandidates(len(moves))

	if len(moves) == 0 {
		log.Debug().Str("mover", mover.String()).Int("roll", roll).Msg("search found no legal move")
		return Result{Metric: e.metrics.Complete()}
	}

	values := make([]float64, len(moves))
	traces := make([][]Step, len(moves))
	searchCandidate := func(i int) {
		w := &walker{
			maximizer: mover,
			evaluate:  e.evaluate,
			metrics:   e.metrics,
			tracer:    tracer{enabled: e.trace},
		}
		child := root.Copy()
		if _, err := game.Apply(child, moves[i], roll); err != nil {
			panic(fmt.Sprintf("legal move %s with roll %d was rejected: %v", moves[i], roll, err))
		}
		values[i] = w.value(child, e.depth)
		w.tracer.record(Step{Kind: RootNode, Depth: e.depth, Player: mover, Roll: roll, Piece: moves[i], Value: values[i]})
		traces[i] = w.tracer.steps
	}

	if e.goroutines > 1 && len(moves) > 1 {
		var g errgroup.Group
		g.SetLimit(e.goroutines)
		for i := range moves {
			i := i
			g.Go(func() error {
				searchCandidate(i)
				return nil
			})
		}
		g.Wait()
	} else {
		for i := range moves {
			searchCandidate(i)
		}
	}

	result := Result{Found: true}
	best := 0
	for i, ref := range moves {
		result.Candidates = append(result.Candidates, Candidate{Piece: ref, Value: values[i]})
		result.Trace = append(result.Trace, traces[i]...)
		if values[i] > values[best] {
			best = i
		}
	}
	result.Piece = moves[best]
	result.Value = values[best]
	result.Metric = e.metrics.Complete()

	log.Debug().
		Str("mover", mover.String()).
		Int("roll", roll).
		Int("candidates", len(moves)).
		Str("piece", result.Piece.String()).
		Float64("value", result.Value).
		Dur("duration", time.Since(start)).
		Msg("search completed")

	return result
}
