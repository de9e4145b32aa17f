package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/input"
)

var helpText = heredoc.Doc(`
	Commands:
	  move <row> <col>   place your mark, rows and columns count from 0
	  click <x> <y>      place your mark at a pixel of the 300x300 canvas
	  restart            start a new round with the same players
	  board              show the board again
	  score              show the score
	  help               show this text
	  quit               leave the game
`)

func (that *Server) handleMove(ctx context.Context, sessionID string, args []string) error {
	cell, err := input.ParseCell(args)
	if err != nil {
		return fmt.Errorf("usage: move <row> <col>: %w", err)
	}

	session, err := that.game.MakeTurn(ctx, sessionID, cell.Row, cell.Col)
	if err != nil {
		return err
	}

	return that.showGame(session)
}

func (that *Server) handleClick(ctx context.Context, sessionID string, args []string) error {
	x, y, err := input.ParsePoint(args)
	if err != nil {
		return fmt.Errorf("usage: click <x> <y>: %w", err)
	}

	session, err := that.game.Click(ctx, sessionID, x, y)
	if err != nil {
		return err
	}

	return that.showGame(session)
}

func (that *Server) handleRestart(ctx context.Context, sessionID string, _ []string) error {
	session, err := that.game.Restart(ctx, sessionID)
	if err != nil {
		return err
	}

	return that.showGame(session)
}

func (that *Server) handleBoard(ctx context.Context, sessionID string, _ []string) error {
	session, err := that.game.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	return that.showGame(session)
}

func (that *Server) handleScore(ctx context.Context, sessionID string, _ []string) error {
	session, err := that.game.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err = that.renderer.Score(session); err != nil {
		return &outputError{err: err}
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ string, _ []string) error {
	if err := that.renderer.Line(helpText); err != nil {
		return &outputError{err: err}
	}
	return nil
}

// describeError turns a game error into a message for the player.
func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameOver):
		return "The game is over. Type 'restart' to play again."
	case errors.Is(err, apperror.ErrInvalidMove):
		return "Invalid move: pick an empty cell with row and column between 0 and 2."
	case errors.Is(err, apperror.ErrOutsideBoard):
		return "That click is outside the board."
	case errors.Is(err, apperror.ErrMalformedInput):
		return err.Error()
	default:
		return "error: " + err.Error()
	}
}
