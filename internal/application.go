package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/input"
	"github.com/rocketscienceinc/tictactoe/internal/render"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/console"
)

// RunApp - runs an interactive session on in/out until the players quit or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionRepo := repository.NewSessionRepository()
	gameManager := usecase.NewGameManager(logger, sessionRepo, input.NewGrid(conf.Board.CellSize))
	renderer := render.New(out, conf.NoColor)

	server := console.New(logger, gameManager, renderer)

	log.Debug("Starting console session", "x", conf.Players.X, "o", conf.Players.O)

	if err := server.Run(ctx, in, conf.Players.X, conf.Players.O); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	return nil
}

// NewLogger - builds the JSON logger for the configured level.
func NewLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
