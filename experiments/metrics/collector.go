package metrics

import (
	"mancala/game"
	"mancala/searcher"
	"time"
)

type MoveMetric struct {
	Step   int
	Player game.Player
	Pit    int
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a tie or an unfinished game
	Store1         int
	Store2         int
	Finished       bool // false when the turn limit stopped the game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Outcome labels the game result for records: "P1", "P2", "tie" or "unfinished".
func (g GameMetric) Outcome() string {
	switch {
	case !g.Finished:
		return "unfinished"
	case g.Winner == game.NoPlayer:
		return "tie"
	default:
		return g.Winner.String()
	}
}
