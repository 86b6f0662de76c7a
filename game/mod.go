package game

import "errors"

// Player identifies one side of the board, either Player1 or Player2.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

var (
	// ErrInvalidMove is returned when a pit is out of range or empty.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoValidMoves is returned when a move is requested but the mover has no legal pit.
	ErrNoValidMoves = errors.New("no valid moves")
)

type StateHash uint64

// Evaluate scores a state from the perspective of the given player.
type Evaluate func(s *State, perspective Player) int
