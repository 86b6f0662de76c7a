package game

// Utility is the store differential from the perspective player's point of
// view. It is used both at the search cutoff and at terminal states.
func Utility(s *State, perspective Player) int {
	return s.Store(perspective) - s.Store(perspective.Opponent())
}
