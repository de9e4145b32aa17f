package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/input"
)

const (
	defaultNameX = "Player X"
	defaultNameO = "Player O"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs sessions of local two-player games.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	grid        input.Grid
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, grid input.Grid) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		grid:        grid,
	}
}

// NewSession - creates a session with a fresh game. Empty names get defaults.
func (that *GameManager) NewSession(ctx context.Context, nameX, nameO string) (*entity.Session, error) {
	if nameX == "" {
		nameX = defaultNameX
	}
	if nameO == "" {
		nameO = defaultNameO
	}

	session := entity.NewSession(uuid.New().String(), nameX, nameO)

	if err := that.updateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID, "x", nameX, "o", nameO)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeTurn - applies a move for whoever is to move. On a rejected move the
// unchanged session is returned along with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", id)

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	mark := session.Game.Turn()
	if err = session.Game.ApplyMove(row, col); err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return session, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "mark", mark, "row", row, "col", col)

	if session.RecordOutcome() {
		log.Info("game finished", "round", session.Round, "outcome", session.Game.Outcome())
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed update session: %w", err)
	}

	return session, nil
}

// Click - translates a pixel on the canvas into a cell and plays it.
func (that *GameManager) Click(ctx context.Context, id string, x, y int) (*entity.Session, error) {
	cell, err := that.grid.CellAt(x, y)
	if err != nil {
		session, getErr := that.GetSession(ctx, id)
		if getErr != nil {
			return nil, getErr
		}

		return session, fmt.Errorf("failed to locate click: %w", err)
	}

	return that.MakeTurn(ctx, id, cell.Row, cell.Col)
}

// Restart - begins the next round with the same players.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Restart()

	if err = that.updateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed update session: %w", err)
	}

	that.logger.Info("game restarted", "sessionID", id, "round", session.Round)

	return session, nil
}

func (that *GameManager) EndSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
