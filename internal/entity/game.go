package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const BoardSize = 3

// Cell addresses one position on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var WinCombos = [8][3]Cell{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Game is the state of a single round. It changes only through ApplyMove and
// stops changing once the outcome is terminal.
type Game struct {
	board   [BoardSize][BoardSize]Mark
	turn    Mark
	moves   int
	outcome Outcome
	line    []Cell
}

func NewGame() *Game {
	return &Game{
		turn:    PlayerX,
		outcome: OutcomeInProgress,
	}
}

// InBounds reports whether (row, col) addresses a cell on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// ApplyMove places the current player's mark at (row, col) and passes the turn.
// A rejected move leaves the game untouched.
func (that *Game) ApplyMove(row, col int) error {
	if that.outcome.IsTerminal() {
		return fmt.Errorf("%w: outcome is %s", apperror.ErrGameOver, that.outcome)
	}

	if !InBounds(row, col) {
		return fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidMove, row, col)
	}

	if !that.board[row][col].IsEmpty() {
		return fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidMove, row, col)
	}

	that.board[row][col] = that.turn
	that.moves++
	that.turn = that.turn.Opponent()

	that.checkOutcome()

	return nil
}

// checkOutcome scans every winning line and then the fill level of the board.
func (that *Game) checkOutcome() {
	for _, combo := range WinCombos {
		a := that.board[combo[0].Row][combo[0].Col]
		b := that.board[combo[1].Row][combo[1].Col]
		c := that.board[combo[2].Row][combo[2].Col]

		if !a.IsEmpty() && a == b && b == c {
			that.outcome = winOutcome(a)
			that.line = combo[:]
			that.turn = EmptyCell
			return
		}
	}

	// the game will continue until all the squares are full
	if that.moves < BoardSize*BoardSize {
		that.outcome = OutcomeInProgress
		return
	}

	that.outcome = OutcomeDraw
	that.turn = EmptyCell
}

// CellState returns the mark at (row, col); coordinates off the board read as empty.
func (that *Game) CellState(row, col int) Mark {
	if !InBounds(row, col) {
		return EmptyCell
	}
	return that.board[row][col]
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsTerminal()
}

// Turn returns the mark to move next, or EmptyCell once the game is over.
func (that *Game) Turn() Mark {
	return that.turn
}

func (that *Game) Moves() int {
	return that.moves
}

// Winner returns the winning mark, or EmptyCell for a draw or an unfinished game.
func (that *Game) Winner() Mark {
	switch that.outcome {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

// WinningLine returns the three cells that decided the game, or nil.
func (that *Game) WinningLine() []Cell {
	if that.line == nil {
		return nil
	}

	line := make([]Cell, len(that.line))
	copy(line, that.line)

	return line
}

// Board returns a copy of the grid.
func (that *Game) Board() [BoardSize][BoardSize]Mark {
	return that.board
}

// Count returns how many cells hold mark.
func (that *Game) Count(mark Mark) int {
	count := 0
	for _, row := range that.board {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}
	return count
}
