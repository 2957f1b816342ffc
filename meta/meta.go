// meta/meta.go
package meta

// BOARD_SIZE is the default board dimension (11x11).
const BOARD_SIZE = 11

// SAMPLE_MULTIPLIER is the default number of Monte Carlo trials per empty cell.
const SAMPLE_MULTIPLIER = 1000

// GO_ROUTINES defines the default number of goroutines running trials.
const GO_ROUTINES = 1

// GAMES is the default number of games per experiment matchup.
const GAMES = 10

// AI_NAME makes a player computer controlled.
const AI_NAME = "AI"
