// meta/meta.go
package meta

// DefaultPits defines the number of pits per player on a standard board.
const DefaultPits = 6

// DefaultStones defines the number of stones in each pit at the start of a game.
const DefaultStones = 4

// DefaultDepth defines the minimax search depth in plies.
const DefaultDepth = 5

// MaxTurns stops a game that has not reached a terminal state.
const MaxTurns = 300

// DefaultSeed seeds random agents when no seed is configured.
const DefaultSeed = 109

// DefaultGames defines the number of games per matchup in a simulation.
const DefaultGames = 100
