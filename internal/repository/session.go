package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// memSession keeps sessions for the lifetime of the process.
type memSession struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

func NewSessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]*entity.Session),
	}
}

func (that *memSession) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session

	return nil
}

func (that *memSession) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrSessionNotFound, id)
	}

	return session, nil
}

func (that *memSession) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}
