package entity

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeXWins      Outcome = "x_wins"
	OutcomeOWins      Outcome = "o_wins"
	OutcomeDraw       Outcome = "draw"
)

// Mark is the content of a single cell, and also names the player who places it.
type Mark string

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Outcome is the result flag of a game.
type Outcome string

func (that Outcome) IsTerminal() bool {
	return that != OutcomeInProgress && that != ""
}

func winOutcome(mark Mark) Outcome {
	if mark == PlayerX {
		return OutcomeXWins
	}
	return OutcomeOWins
}
