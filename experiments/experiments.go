package experiments

import (
	"fmt"
	"senet/agent"
	"senet/engine"
	"senet/experiments/metrics"
	"senet/game"
	"senet/meta"
	"senet/searcher"

	"github.com/rs/zerolog/log"
)

const (
	SearchKind = "search"
	GreedyKind = "greedy"
	RandomKind = "random"
)

// Experiment plays every matchup numGames times and returns the directory the records were written to.
type Experiment func(root string, numGames int, seed uint64) (string, error)

var Experiments = map[string]Experiment{
	"depth":           RunDepthExperiment,
	"baseline":        RunBaselineExperiment,
	"parallelization": RunParallelizationExperiment,
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: SearchKind, Depth: 1, Goroutines: meta.GO_ROUTINES},
	{ID: 2, Kind: SearchKind, Depth: 2, Goroutines: meta.GO_ROUTINES},
	{ID: 3, Kind: SearchKind, Depth: 3, Goroutines: meta.GO_ROUTINES},
}

// RunDepthExperiment pairs the greedy baseline against searchers of increasing depth.
func RunDepthExperiment(root string, numGames int, seed uint64) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: GreedyKind}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth", append(depthConfigs, baseline), matchUps, numGames, seed)
}

// RunBaselineExperiment ranks the non-searching agents against each other and against a shallow searcher.
func RunBaselineExperiment(root string, numGames int, seed uint64) (string, error) {
	random := metrics.AgentConfig{ID: 0, Kind: RandomKind, Seed: seed}
	greedy := metrics.AgentConfig{ID: 1, Kind: GreedyKind}
	search := metrics.AgentConfig{ID: 2, Kind: SearchKind, Depth: 1, Goroutines: 1}
	matchUps := [][]metrics.AgentConfig{
		{random, greedy},
		{random, search},
		{greedy, search},
	}

	return runExperiment(root, "baseline", []metrics.AgentConfig{random, greedy, search}, matchUps, numGames, seed)
}

// RunParallelizationExperiment plays equally deep searchers with growing goroutine counts against themselves.
func RunParallelizationExperiment(root string, numGames int, seed uint64) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: SearchKind, Depth: meta.DEFAULT_DEPTH, Goroutines: 1},
		{ID: 2, Kind: SearchKind, Depth: meta.DEFAULT_DEPTH, Goroutines: 2},
		{ID: 3, Kind: SearchKind, Depth: meta.DEFAULT_DEPTH, Goroutines: 4},
		{ID: 4, Kind: SearchKind, Depth: meta.DEFAULT_DEPTH, Goroutines: 8},
	}
	// Same config for both players for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(root, "parallelization", configs, matchUps, numGames, seed)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, seed uint64) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			// Alternate the starting side between games of a matchup
			starting := game.PlayerA
			if i%2 == 1 {
				starting = game.PlayerB
			}

			winner, gameMetric, moveMetrics := runGame(config1, config2, starting, seed+uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteGameParquet(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game parquet: %w", err)
	}
	if err := writer.WriteMoveParquet(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move parquet: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame plays a single game, agent1 as Player1 and agent2 as Player2
func runGame(config1, config2 metrics.AgentConfig, starting game.Player, seed uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{createAgent(config1, seed), createAgent(config2, seed+1)}
	e := engine.LocalEngine(agents, game.NewRandomDice(seed), engine.WithStartingPlayer(starting))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case GreedyKind:
		return agent.NewGreedyAgent()
	case RandomKind:
		return agent.NewRandomAgent(config.Seed + seed)
	case SearchKind:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if config.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(config.Goroutines))
		}
		return agent.NewSearchAgent(searcher.New(options...))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
