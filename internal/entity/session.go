package entity

// Score counts finished rounds of a session.
type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

// Session is a sequence of rounds played by the same two players.
type Session struct {
	ID      string    `json:"id"`
	Players [2]Player `json:"players"`
	Game    *Game     `json:"-"`
	Score   Score     `json:"score"`
	Round   int       `json:"round"`

	recorded bool
}

func NewSession(id, nameX, nameO string) *Session {
	return &Session{
		ID: id,
		Players: [2]Player{
			{Name: nameX, Mark: PlayerX},
			{Name: nameO, Mark: PlayerO},
		},
		Game:  NewGame(),
		Round: 1,
	}
}

// PlayerByMark returns the player who owns mark.
func (that *Session) PlayerByMark(mark Mark) (Player, bool) {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player, true
		}
	}
	return Player{}, false
}

// RecordOutcome adds a finished round to the score. It reports false when the
// round is still running or has already been counted.
func (that *Session) RecordOutcome() bool {
	if that.recorded || !that.Game.IsFinished() {
		return false
	}

	switch that.Game.Outcome() {
	case OutcomeXWins:
		that.Score.XWins++
	case OutcomeOWins:
		that.Score.OWins++
	case OutcomeDraw:
		that.Score.Draws++
	}

	that.recorded = true

	return true
}

// Restart starts the next round with the same players.
func (that *Session) Restart() {
	that.Game = NewGame()
	that.Round++
	that.recorded = false
}
