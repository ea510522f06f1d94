// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines used to search root candidates.
const GO_ROUTINES = 1

// DEFAULT_DEPTH defines the expectiminimax search depth.
const DEFAULT_DEPTH = 3

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 1000

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10
