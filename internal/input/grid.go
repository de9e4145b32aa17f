package input

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const DefaultCellSize = 100

// Grid maps pixel coordinates on a square canvas to board cells.
type Grid struct {
	CellSize int
}

func NewGrid(cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Grid{CellSize: cellSize}
}

// Size - returns the canvas edge length in pixels.
func (that Grid) Size() int {
	return that.CellSize * entity.BoardSize
}

// CellAt - translates a click at (x, y) into a cell. x selects the column and y the row.
func (that Grid) CellAt(x, y int) (entity.Cell, error) {
	if x < 0 || y < 0 || x >= that.Size() || y >= that.Size() {
		return entity.Cell{}, fmt.Errorf("%w: (%d, %d) on a %dx%d canvas", apperror.ErrOutsideBoard, x, y, that.Size(), that.Size())
	}

	return entity.Cell{Row: y / that.CellSize, Col: x / that.CellSize}, nil
}

// Center - returns the pixel at the middle of a cell, where its marker is drawn.
func (that Grid) Center(cell entity.Cell) (int, int) {
	half := that.CellSize / 2
	return cell.Col*that.CellSize + half, cell.Row*that.CellSize + half
}

// ParseCell - parses a "<row> <col>" pair of tokens.
func ParseCell(args []string) (entity.Cell, error) {
	first, second, err := parsePair(args)
	if err != nil {
		return entity.Cell{}, err
	}

	return entity.Cell{Row: first, Col: second}, nil
}

// ParsePoint - parses a "<x> <y>" pair of pixel tokens.
func ParsePoint(args []string) (int, int, error) {
	return parsePair(args)
}

func parsePair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 numbers, got %d", apperror.ErrMalformedInput, len(args))
	}

	first, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, args[0])
	}

	second, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, args[1])
	}

	return first, second, nil
}
