package main

import (
	"flag"
	"fmt"
	"os"
	"senet/experiments"
	"senet/meta"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	experiment := flag.String("experiment", "depth", "experiment to run ("+strings.Join(experimentNames(), ", ")+")")
	numGames := flag.Int("games", meta.NUM_GAMES, "games per matchup")
	out := flag.String("out", "results", "directory the experiment records are written to")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for dice and random agents")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	run, ok := experiments.Experiments[*experiment]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown experiment %q\n", *experiment)
		flag.Usage()
		os.Exit(2)
	}

	log.Info().Uint64("seed", *seed).Int("games", *numGames).Msgf("running %s experiment", *experiment)
	dir, err := run(*out, *numGames, *seed)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	log.Info().Str("dir", dir).Msg("experiment records written")
}

func experimentNames() []string {
	names := make([]string, 0, len(experiments.Experiments))
	for name := range experiments.Experiments {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
