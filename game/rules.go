package game

import "fmt"

type Rules interface {
	// ValidMove reports whether the player to move may sow from the 1-based pit.
	ValidMove(s *State, pit int) bool
	// ValidMoves lists the legal pits of the player to move in ascending order.
	ValidMoves(s *State) []int
	// Play executes one turn in place. On error the state is left unchanged.
	Play(s *State, pit int) error
	IsTerminal(s *State) bool
	Score(s *State) (store1, store2 int)
}

// Replay rebuilds a game from its move log, failing on the first move that
// was not legal for the recorded player.
func Replay(rules Rules, pitsPerPlayer, stonesPerPit int, moves []Move) (*State, error) {
	s := NewState(pitsPerPlayer, stonesPerPit)
	for i, move := range moves {
		if move.Player != s.CurrentPlayer {
			return nil, fmt.Errorf("move %d: %w: %s played out of turn", i+1, ErrInvalidMove, move.Player)
		}
		if err := rules.Play(s, move.Pit); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return s, nil
}
