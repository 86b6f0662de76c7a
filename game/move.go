package game

// Move records a single turn: the player who moved and the 1-based pit they chose.
type Move struct {
	Player Player `json:"player"`
	Pit    int    `json:"pit"`
}
