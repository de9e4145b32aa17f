package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/render"
)

const (
	actionMove    = "move"
	actionClick   = "click"
	actionRestart = "restart"
	actionBoard   = "board"
	actionScore   = "score"
	actionHelp    = "help"
	actionQuit    = "quit"
)

type gameManager interface {
	NewSession(ctx context.Context, nameX, nameO string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Session, error)
	Click(ctx context.Context, id string, x, y int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
}

type handler func(ctx context.Context, sessionID string, args []string) error

// Server plays one session over a line-oriented text stream.
type Server struct {
	logger   *slog.Logger
	game     gameManager
	renderer *render.Renderer

	handlers map[string]handler
}

func New(logger *slog.Logger, game gameManager, renderer *render.Renderer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		game:     game,
		renderer: renderer,
	}

	server.handlers = map[string]handler{
		actionMove:    server.handleMove,
		actionClick:   server.handleClick,
		actionRestart: server.handleRestart,
		actionBoard:   server.handleBoard,
		actionScore:   server.handleScore,
		actionHelp:    server.handleHelp,
	}

	return server
}

// Run - starts a session for the two players and processes commands from in
// until quit, end of input or ctx is done.
func (that *Server) Run(ctx context.Context, in io.Reader, nameX, nameO string) error {
	log := that.logger.With("method", "Run")

	session, err := that.game.NewSession(ctx, nameX, nameO)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	log = log.With("sessionID", session.ID)

	defer func() {
		if err := that.game.EndSession(context.WithoutCancel(ctx), session.ID); err != nil {
			log.Error("failed to end session", "error", err)
		}
	}()

	if err = that.renderer.Line("Type 'help' for commands."); err != nil {
		return err
	}

	if err = that.showGame(session); err != nil {
		return err
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := readLines(readCtx, in)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving session")
			return that.showFinalScore(ctx, session.ID)

		case line, ok := <-lines:
			if !ok {
				if err = <-scanErr; err != nil && !errors.Is(err, context.Canceled) {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return that.showFinalScore(ctx, session.ID)
			}

			quit, err := that.handleLine(ctx, session.ID, line)
			if err != nil {
				return err
			}

			if quit {
				return that.showFinalScore(ctx, session.ID)
			}
		}
	}
}

// readLines feeds input lines to a channel until EOF or cancellation. The
// error channel receives exactly one value before the line channel closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

// handleLine dispatches one command. Only output failures are returned as errors;
// game errors are reported to the player.
func (that *Server) handleLine(ctx context.Context, sessionID, line string) (bool, error) {
	log := that.logger.With("method", "handleLine", "sessionID", sessionID)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	action := strings.ToLower(fields[0])
	if action == actionQuit {
		return true, nil
	}

	handle, ok := that.handlers[action]
	if !ok {
		log.Debug("unknown action", "action", action)
		return false, that.renderer.Line(fmt.Sprintf("unknown command %q, type 'help' for commands", action))
	}

	if err := handle(ctx, sessionID, fields[1:]); err != nil {
		log.Debug("action failed", "action", action, "error", err)
		return false, that.reportError(err)
	}

	return false, nil
}

func (that *Server) reportError(err error) error {
	var outErr *outputError
	if errors.As(err, &outErr) {
		return outErr.err
	}

	return that.renderer.Line(describeError(err))
}

func (that *Server) showGame(session *entity.Session) error {
	if err := that.renderer.Board(session.Game); err != nil {
		return &outputError{err: err}
	}

	if err := that.renderer.Status(session); err != nil {
		return &outputError{err: err}
	}

	if session.Game.IsFinished() {
		if err := that.renderer.Score(session); err != nil {
			return &outputError{err: err}
		}
	}

	return nil
}

func (that *Server) showFinalScore(ctx context.Context, sessionID string) error {
	session, err := that.game.GetSession(context.WithoutCancel(ctx), sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return that.renderer.Score(session)
}

// outputError marks failures writing to the player, which end the session.
type outputError struct {
	err error
}

func (that *outputError) Error() string {
	return that.err.Error()
}

func (that *outputError) Unwrap() error {
	return that.err
}
