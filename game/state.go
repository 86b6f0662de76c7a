package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// State is the board of a Mancala game at any point: the pit and store counts,
// whose turn it is, and the log of moves played so far.
//
// Slots are laid out as player 1's pits, player 1's store, player 2's pits,
// player 2's store.
type State struct {
	PitsPerPlayer int    `json:"pitsPerPlayer"`
	StonesPerPit  int    `json:"stonesPerPit"`
	Slots         []int  `json:"slots"`
	CurrentPlayer Player `json:"currentPlayer"`
	Moves         []Move `json:"moves"`
}

// NewState returns the starting board with every pit holding stonesPerPit
// stones, both stores empty and player 1 to move.
func NewState(pitsPerPlayer, stonesPerPit int) *State {
	if pitsPerPlayer <= 0 {
		panic("pits per player must be positive")
	}
	if stonesPerPit < 0 {
		panic("stones per pit cannot be negative")
	}

	s := &State{
		PitsPerPlayer: pitsPerPlayer,
		StonesPerPit:  stonesPerPit,
		Slots:         make([]int, 2*(pitsPerPlayer+1)),
		CurrentPlayer: Player1,
		Moves:         []Move{},
	}
	for i := range s.Slots {
		s.Slots[i] = stonesPerPit
	}
	s.Slots[s.StoreIndex(Player1)] = 0
	s.Slots[s.StoreIndex(Player2)] = 0
	return s
}

// Copy returns a deep copy so the clone can be played without affecting s.
func (s *State) Copy() *State {
	slots := make([]int, len(s.Slots))
	copy(slots, s.Slots)

	moves := make([]Move, len(s.Moves))
	copy(moves, s.Moves)

	return &State{
		PitsPerPlayer: s.PitsPerPlayer,
		StonesPerPit:  s.StonesPerPit,
		Slots:         slots,
		CurrentPlayer: s.CurrentPlayer,
		Moves:         moves,
	}
}

// PitRange returns the first and last absolute slot index of the player's pit row.
func (s *State) PitRange(p Player) (start, end int) {
	if p == Player1 {
		return 0, s.PitsPerPlayer - 1
	}
	return s.PitsPerPlayer + 1, 2 * s.PitsPerPlayer
}

// StoreIndex returns the absolute slot index of the player's store.
func (s *State) StoreIndex(p Player) int {
	if p == Player1 {
		return s.PitsPerPlayer
	}
	return 2*s.PitsPerPlayer + 1
}

// SlotIndex converts a 1-based pit number of the given player into an absolute slot index.
func (s *State) SlotIndex(p Player, pit int) int {
	start, _ := s.PitRange(p)
	return start + pit - 1
}

// Mirror returns the slot facing index i across the board. Both rows run in
// sowing order, so the first pit of one row faces the last pit of the other.
// i must be a pit, not a store.
func (s *State) Mirror(i int) int {
	owner := s.Owner(i)
	_, end := s.PitRange(owner)
	start, _ := s.PitRange(owner.Opponent())
	return start + (end - i)
}

// Owner returns the player whose pit row contains slot i, or NoPlayer for a store.
func (s *State) Owner(i int) Player {
	switch {
	case i >= 0 && i < s.PitsPerPlayer:
		return Player1
	case i > s.PitsPerPlayer && i <= 2*s.PitsPerPlayer:
		return Player2
	default:
		return NoPlayer
	}
}

// Pits returns a copy of the player's pit row in sowing order.
func (s *State) Pits(p Player) []int {
	start, end := s.PitRange(p)
	pits := make([]int, end-start+1)
	copy(pits, s.Slots[start:end+1])
	return pits
}

// Store returns the number of stones in the player's store.
func (s *State) Store(p Player) int {
	return s.Slots[s.StoreIndex(p)]
}

// TotalStones is the number of stones on the board, fixed for the game's lifetime.
func (s *State) TotalStones() int {
	return s.StonesPerPit * s.PitsPerPlayer * 2
}

// Winner returns the player with the larger store, or NoPlayer on a tie.
func (s *State) Winner() Player {
	store1, store2 := s.Store(Player1), s.Store(Player2)
	switch {
	case store1 > store2:
		return Player1
	case store2 > store1:
		return Player2
	default:
		return NoPlayer
	}
}

func (s *State) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 8)

	binary.LittleEndian.PutUint64(buf, uint64(s.CurrentPlayer))
	h.Write(buf)
	for _, stones := range s.Slots {
		binary.LittleEndian.PutUint64(buf, uint64(stones))
		h.Write(buf)
	}
	return StateHash(h.Sum64())
}

// String draws the board with player 2's row on top, read right to left, so
// that facing pits line up vertically.
func (s *State) String() string {
	var b strings.Builder

	width := len(fmt.Sprint(s.TotalStones()))
	cell := func(n int) string { return fmt.Sprintf("[%*d]", width, n) }
	pad := strings.Repeat(" ", width+2)

	top := s.Pits(Player2)
	b.WriteString(pad)
	for i := len(top) - 1; i >= 0; i-- {
		b.WriteString(cell(top[i]))
	}
	b.WriteString("   P2\n")

	b.WriteString(cell(s.Store(Player2)))
	b.WriteString(strings.Repeat(" ", (width+2)*s.PitsPerPlayer))
	b.WriteString(cell(s.Store(Player1)))
	b.WriteString("\n")

	b.WriteString(pad)
	for _, stones := range s.Pits(Player1) {
		b.WriteString(cell(stones))
	}
	b.WriteString("   P1\n")

	fmt.Fprintf(&b, "turn: %s\n", s.CurrentPlayer)
	return b.String()
}
