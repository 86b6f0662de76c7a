package game

import "fmt"

// StandardRules sows counter-clockwise skipping the opponent's store, captures
// when the last stone lands in an empty pit of the mover's own row, and always
// passes the turn. Landing in one's own store does not grant an extra turn.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) ValidMove(s *State, pit int) bool {
	if pit < 1 || pit > s.PitsPerPlayer {
		return false
	}
	return s.Slots[s.SlotIndex(s.CurrentPlayer, pit)] > 0
}

func (sr *StandardRules) ValidMoves(s *State) []int {
	moves := make([]int, 0, s.PitsPerPlayer)
	for pit := 1; pit <= s.PitsPerPlayer; pit++ {
		if sr.ValidMove(s, pit) {
			moves = append(moves, pit)
		}
	}
	return moves
}

func (sr *StandardRules) Play(s *State, pit int) error {
	if !sr.ValidMove(s, pit) {
		return fmt.Errorf("%w: %s cannot play pit %d", ErrInvalidMove, s.CurrentPlayer, pit)
	}

	player := s.CurrentPlayer
	s.Moves = append(s.Moves, Move{Player: player, Pit: pit})

	index := s.SlotIndex(player, pit)
	stones := s.Slots[index]
	s.Slots[index] = 0

	skip := s.StoreIndex(player.Opponent())
	for stones > 0 {
		index = (index + 1) % len(s.Slots)
		if index == skip {
			continue
		}
		s.Slots[index]++
		stones--
	}

	sr.capture(s, player, index)

	s.CurrentPlayer = player.Opponent()
	return nil
}

// capture empties the landing pit and the pit facing it into the mover's
// store when the last stone fell into a previously empty pit of their own row.
func (sr *StandardRules) capture(s *State, player Player, landing int) {
	if s.Owner(landing) != player || s.Slots[landing] != 1 {
		return
	}
	opposite := s.Mirror(landing)
	s.Slots[s.StoreIndex(player)] += s.Slots[landing] + s.Slots[opposite]
	s.Slots[landing] = 0
	s.Slots[opposite] = 0
}

// IsTerminal reports whether either player's pit row is empty.
func (sr *StandardRules) IsTerminal(s *State) bool {
	return rowEmpty(s, Player1) || rowEmpty(s, Player2)
}

func (sr *StandardRules) Score(s *State) (store1, store2 int) {
	return s.Store(Player1), s.Store(Player2)
}

func rowEmpty(s *State, p Player) bool {
	start, end := s.PitRange(p)
	for i := start; i <= end; i++ {
		if s.Slots[i] != 0 {
			return false
		}
	}
	return true
}
