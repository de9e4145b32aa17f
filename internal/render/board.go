package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const rowSeparator = "   ---+---+---"

type board interface {
	CellState(row, col int) entity.Mark
	WinningLine() []entity.Cell
}

// Renderer draws boards and session status as text.
type Renderer struct {
	out io.Writer

	markX   *color.Color
	markO   *color.Color
	winning *color.Color
}

func New(out io.Writer, noColor bool) *Renderer {
	renderer := &Renderer{
		out:     out,
		markX:   color.New(color.FgRed, color.Bold),
		markO:   color.New(color.FgBlue, color.Bold),
		winning: color.New(color.FgGreen, color.Bold, color.Underline),
	}

	if noColor {
		renderer.markX.DisableColor()
		renderer.markO.DisableColor()
		renderer.winning.DisableColor()
	}

	return renderer
}

// Board writes the 3x3 grid with row and column labels.
func (that *Renderer) Board(game board) error {
	highlight := make(map[entity.Cell]bool)
	for _, cell := range game.WinningLine() {
		highlight[cell] = true
	}

	var sb strings.Builder

	sb.WriteString("    0   1   2\n")
	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			cell := entity.Cell{Row: row, Col: col}
			cells = append(cells, " "+that.mark(game.CellState(row, col), highlight[cell])+" ")
		}

		fmt.Fprintf(&sb, " %d %s\n", row, strings.Join(cells, "|"))
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Renderer) mark(mark entity.Mark, highlighted bool) string {
	switch {
	case mark.IsEmpty():
		return " "
	case highlighted:
		return that.winning.Sprint(string(mark))
	case mark == entity.PlayerX:
		return that.markX.Sprint(string(mark))
	default:
		return that.markO.Sprint(string(mark))
	}
}

// Status writes whose turn it is, or how the round ended.
func (that *Renderer) Status(session *entity.Session) error {
	game := session.Game

	var line string
	switch game.Outcome() {
	case entity.OutcomeXWins, entity.OutcomeOWins:
		winner, _ := session.PlayerByMark(game.Winner())
		line = fmt.Sprintf("Round %d: %s (%s) wins!", session.Round, winner.Name, that.mark(winner.Mark, false))
	case entity.OutcomeDraw:
		line = fmt.Sprintf("Round %d: it's a tie!", session.Round)
	default:
		player, _ := session.PlayerByMark(game.Turn())
		line = fmt.Sprintf("Round %d: %s (%s) to move", session.Round, player.Name, that.mark(player.Mark, false))
	}

	return that.Line(line)
}

// Score writes the running tally of the session.
func (that *Renderer) Score(session *entity.Session) error {
	playerX, _ := session.PlayerByMark(entity.PlayerX)
	playerO, _ := session.PlayerByMark(entity.PlayerO)

	return that.Line(fmt.Sprintf("Score: %s %d, %s %d, draws %d",
		playerX.Name, session.Score.XWins,
		playerO.Name, session.Score.OWins,
		session.Score.Draws,
	))
}

func (that *Renderer) Line(text string) error {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}
