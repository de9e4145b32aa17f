package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/input"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

var errStorageIsFull = errors.New("storage is full")

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	args := that.Called(ctx, session)
	return args.Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newManager() *GameManager {
	return NewGameManager(testLogger(), repository.NewSessionRepository(), input.NewGrid(input.DefaultCellSize))
}

func TestGameManager_NewSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a session with the given names", func(t *testing.T) {
		manager := newManager()

		session, err := manager.NewSession(ctx, "Alice", "Bob")

		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		playerX, _ := session.PlayerByMark(entity.PlayerX)
		assert.Equal(t, "Alice", playerX.Name)

		stored, err := manager.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Same(t, session, stored)
	})

	t.Run("Empty names get defaults", func(t *testing.T) {
		manager := newManager()

		session, err := manager.NewSession(ctx, "", "")

		require.NoError(t, err)
		playerX, _ := session.PlayerByMark(entity.PlayerX)
		playerO, _ := session.PlayerByMark(entity.PlayerO)
		assert.Equal(t, defaultNameX, playerX.Name)
		assert.Equal(t, defaultNameO, playerO.Name)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		// Given: a repository that cannot store sessions
		mockRepo := &mockSessionRepo{}
		mockRepo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(errStorageIsFull).
			Once()
		manager := NewGameManager(testLogger(), mockRepo, input.NewGrid(input.DefaultCellSize))

		// When: a session is created
		session, err := manager.NewSession(ctx, "Alice", "Bob")

		// Then: the error is returned
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, session)
		mockRepo.AssertExpectations(t)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a full game and records the winner once", func(t *testing.T) {
		// Given: a new session
		manager := newManager()
		session, err := manager.NewSession(ctx, "Alice", "Bob")
		require.NoError(t, err)

		// When: X completes the top row
		for _, cell := range []entity.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}} {
			session, err = manager.MakeTurn(ctx, session.ID, cell.Row, cell.Col)
			require.NoError(t, err)
		}

		// Then: X wins and the score counts one X win
		assert.Equal(t, entity.OutcomeXWins, session.Game.Outcome())
		assert.Equal(t, entity.Score{XWins: 1}, session.Score)

		// When: another move is attempted
		session, err = manager.MakeTurn(ctx, session.ID, 2, 2)

		// Then: ErrGameOver is returned and the score is unchanged
		require.ErrorIs(t, err, apperror.ErrGameOver)
		require.NotNil(t, session)
		assert.Equal(t, entity.Score{XWins: 1}, session.Score)
		assert.Equal(t, entity.EmptyCell, session.Game.CellState(2, 2))
	})

	t.Run("Rejected move returns the session unchanged", func(t *testing.T) {
		manager := newManager()
		session, err := manager.NewSession(ctx, "Alice", "Bob")
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, session.ID, 1, 1)
		require.NoError(t, err)

		session, err = manager.MakeTurn(ctx, session.ID, 1, 1)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, 1, session.Game.Moves())
		assert.Equal(t, entity.PlayerO, session.Game.Turn())
	})

	t.Run("Unknown session", func(t *testing.T) {
		manager := newManager()

		session, err := manager.MakeTurn(ctx, "missing", 0, 0)

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, session)
	})

	t.Run("Returns error if the repository fails on update", func(t *testing.T) {
		// Given: a repository that finds the session but cannot save it
		session := entity.NewSession("s1", "Alice", "Bob")
		mockRepo := &mockSessionRepo{}
		mockRepo.On("GetByID", mock.Anything, "s1").Return(session, nil).Once()
		mockRepo.On("CreateOrUpdate", mock.Anything, session).Return(errStorageIsFull).Once()
		manager := NewGameManager(testLogger(), mockRepo, input.NewGrid(input.DefaultCellSize))

		// When: a move is made
		result, err := manager.MakeTurn(ctx, "s1", 0, 0)

		// Then: the storage error is returned
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestGameManager_Click(t *testing.T) {
	ctx := context.Background()

	t.Run("Click maps to a cell", func(t *testing.T) {
		manager := newManager()
		session, err := manager.NewSession(ctx, "Alice", "Bob")
		require.NoError(t, err)

		session, err = manager.Click(ctx, session.ID, 250, 40)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, session.Game.CellState(0, 2))
	})

	t.Run("Click outside the canvas", func(t *testing.T) {
		manager := newManager()
		session, err := manager.NewSession(ctx, "Alice", "Bob")
		require.NoError(t, err)

		session, err = manager.Click(ctx, session.ID, 300, 0)

		require.ErrorIs(t, err, apperror.ErrOutsideBoard)
		require.NotNil(t, session)
		assert.Zero(t, session.Game.Moves())
	})
}

func TestGameManager_Restart(t *testing.T) {
	ctx := context.Background()

	// Given: a session with a drawn round
	manager := newManager()
	session, err := manager.NewSession(ctx, "Alice", "Bob")
	require.NoError(t, err)

	draw := []entity.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	for _, cell := range draw {
		session, err = manager.MakeTurn(ctx, session.ID, cell.Row, cell.Col)
		require.NoError(t, err)
	}
	require.Equal(t, entity.OutcomeDraw, session.Game.Outcome())

	// When: the session is restarted
	session, err = manager.Restart(ctx, session.ID)

	// Then: a new round starts with the same players and the score kept
	require.NoError(t, err)
	assert.Equal(t, 2, session.Round)
	assert.Equal(t, entity.OutcomeInProgress, session.Game.Outcome())
	assert.Equal(t, entity.Score{Draws: 1}, session.Score)
	playerX, _ := session.PlayerByMark(entity.PlayerX)
	assert.Equal(t, "Alice", playerX.Name)

	_, err = manager.MakeTurn(ctx, session.ID, 1, 1)
	require.NoError(t, err)
}

func TestGameManager_EndSession(t *testing.T) {
	ctx := context.Background()
	manager := newManager()
	session, err := manager.NewSession(ctx, "Alice", "Bob")
	require.NoError(t, err)

	require.NoError(t, manager.EndSession(ctx, session.ID))

	_, err = manager.GetSession(ctx, session.ID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)

	err = manager.EndSession(ctx, session.ID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}
