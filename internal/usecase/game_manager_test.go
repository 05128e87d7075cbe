package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/websocket"
	mockedUseCase "github.com/rocketscienceinc/tictactoe3d-client/mocks/usecase"
)

var errServiceDown = errors.New("service down")

type managerFixture struct {
	manager *GameManager
	channel *channelHarness
	remote  *mockedUseCase.MockremoteSession
}

func newTestManager(t *testing.T, opts ...Option) *managerFixture {
	t.Helper()

	channel := newChannelHarness(t, true)
	remote := mockedUseCase.NewMockremoteSession(t)
	manager := NewGameManager(discardLogger(), remote, channel, opts...)
	t.Cleanup(manager.Close)

	return &managerFixture{manager: manager, channel: channel, remote: remote}
}

func snapshot(turn entity.Mark, status entity.Status, marks map[entity.Coord]entity.Mark) *entity.Snapshot {
	snap := &entity.Snapshot{Turn: turn, Status: status}
	for cell, mark := range marks {
		snap.Board[cell.X][cell.Y][cell.Z] = mark
	}

	return snap
}

func (that *managerFixture) expectRoom(event, gameID string) *mock.Call {
	return that.channel.EXPECT().Emit(event, websocket.RoomPayload{GameID: gameID}).Return(nil).Call
}

func (that *managerFixture) startSingle(t *testing.T, gameID string) {
	t.Helper()

	that.remote.EXPECT().CreateGame(mock.Anything, entity.ModeSingle).Return(&entity.CreatedGame{ID: gameID}, nil).Once()
	that.remote.EXPECT().FetchState(mock.Anything, gameID).Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()
	that.expectRoom(websocket.EventJoin, gameID).Once()

	require.NoError(t, that.manager.StartSinglePlayer(context.Background()))
}

func (that *managerFixture) hostDouble(t *testing.T, gameID, code string) {
	t.Helper()

	that.remote.EXPECT().CreateGame(mock.Anything, entity.ModeDouble).Return(&entity.CreatedGame{ID: gameID, JoinCode: code}, nil).Once()
	that.remote.EXPECT().FetchState(mock.Anything, gameID).Return(snapshot(entity.PlayerX, entity.StatusWaiting, nil), nil).Once()
	that.expectRoom(websocket.EventJoin, gameID).Once()

	require.NoError(t, that.manager.CreateMultiplayer(context.Background()))
}

func (that *managerFixture) joinDouble(t *testing.T, gameID, code string) {
	t.Helper()

	that.remote.EXPECT().JoinGame(mock.Anything, code).Return(gameID, nil).Once()
	that.remote.EXPECT().FetchState(mock.Anything, gameID).Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()
	that.expectRoom(websocket.EventJoin, gameID).Once()

	require.NoError(t, that.manager.JoinMultiplayer(context.Background(), code))
}

func TestGameManager_Start(t *testing.T) {
	t.Run("Single player plays X against the service", func(t *testing.T) {
		// Given: A manager with a connected channel
		fx := newTestManager(t)

		// When: Starting a single player game
		fx.startSingle(t, "g-1")

		// Then: The session is attached and it is our move
		session := fx.manager.Session()
		assert.Equal(t, "g-1", session.ID)
		assert.Equal(t, entity.ModeSingle, session.Mode)
		assert.Equal(t, entity.PlayerX, session.LocalMark)
		assert.Equal(t, entity.StatusActive, session.Status)
		assert.True(t, session.IsMyTurn())
		assert.Equal(t, RoomJoined, fx.manager.RoomState())
	})

	t.Run("Host waits for an opponent with a join code", func(t *testing.T) {
		// Given: A manager with a connected channel
		fx := newTestManager(t)

		// When: Creating a multiplayer game
		fx.hostDouble(t, "g-2", "AB12")

		// Then: The session waits with the code on display
		session := fx.manager.Session()
		assert.Equal(t, entity.StatusWaiting, session.Status)
		assert.Equal(t, "AB12", session.JoinCode)
		assert.Equal(t, entity.PlayerX, session.LocalMark)

		// When: The opponent joins and the service pushes the update
		fx.channel.push(t, websocket.EventGameUpdate, snapshot(entity.PlayerX, entity.StatusActive, nil))

		// Then: The game is on and the code is gone
		session = fx.manager.Session()
		assert.Equal(t, entity.StatusActive, session.Status)
		assert.Equal(t, entity.PlayerX, session.Turn)
		assert.Empty(t, session.JoinCode)
	})

	t.Run("Joiner plays O and waits for X", func(t *testing.T) {
		// Given: A manager with a connected channel
		fx := newTestManager(t)

		// When: Joining a hosted game
		fx.joinDouble(t, "g-3", "AB12")

		// Then: The local mark is O and X moves first
		session := fx.manager.Session()
		assert.Equal(t, entity.PlayerO, session.LocalMark)
		assert.Equal(t, entity.PlayerX, session.Turn)
		assert.Equal(t, entity.StatusActive, session.Status)
		assert.False(t, session.IsMyTurn())
	})

	t.Run("Join code is trimmed", func(t *testing.T) {
		// Given: A manager with a connected channel
		fx := newTestManager(t)

		fx.remote.EXPECT().JoinGame(mock.Anything, "AB12").Return("g-3", nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-3").Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()
		fx.expectRoom(websocket.EventJoin, "g-3").Once()

		// When: Joining with a padded code
		err := fx.manager.JoinMultiplayer(context.Background(), "  AB12 ")

		// Then: The service sees the trimmed code
		require.NoError(t, err)
		assert.Equal(t, "g-3", fx.manager.Session().ID)
	})

	t.Run("Empty join code never reaches the service", func(t *testing.T) {
		// Given: A manager
		fx := newTestManager(t)

		// When: Joining with blanks
		err := fx.manager.JoinMultiplayer(context.Background(), "   ")

		// Then: It is an illegal move and nothing is attached
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrEmptyJoinCode)
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Create failure leaves the manager unattached", func(t *testing.T) {
		// Given: A service that is down
		fx := newTestManager(t)
		fx.remote.EXPECT().CreateGame(mock.Anything, entity.ModeDouble).
			Return(nil, &apperror.RequestError{Op: "create game", Err: errServiceDown}).Once()

		// When: Creating a multiplayer game
		err := fx.manager.CreateMultiplayer(context.Background())

		// Then: The failure surfaces as a request failure
		require.ErrorIs(t, err, apperror.ErrRequestFailure)
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Failed create keeps the attached session", func(t *testing.T) {
		// Given: A hosted game and a service that then goes down
		fx := newTestManager(t)
		fx.hostDouble(t, "g-1", "AB12")
		fx.remote.EXPECT().CreateGame(mock.Anything, entity.ModeDouble).
			Return(nil, &apperror.RequestError{Op: "create game", Err: errServiceDown}).Once()

		// When: Hosting another game
		err := fx.manager.CreateMultiplayer(context.Background())

		// Then: The failure surfaces, the old session and room are untouched and no leave went out
		require.ErrorIs(t, err, apperror.ErrRequestFailure)

		session := fx.manager.Session()
		assert.Equal(t, "g-1", session.ID)
		assert.Equal(t, "AB12", session.JoinCode)
		assert.Equal(t, RoomJoined, fx.manager.RoomState())
		fx.channel.AssertNotCalled(t, "Emit", websocket.EventLeave, mock.Anything)
	})

	t.Run("Failed join keeps the attached session", func(t *testing.T) {
		// Given: A running single game and a join code nobody hosts
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")
		fx.remote.EXPECT().JoinGame(mock.Anything, "ZZ99").
			Return("", &apperror.RequestError{Op: "join game", StatusCode: 404, Message: "Game not found"}).Once()

		// When: Joining
		err := fx.manager.JoinMultiplayer(context.Background(), "ZZ99")

		// Then: The single game is still attached
		require.ErrorIs(t, err, apperror.ErrRequestFailure)
		assert.Equal(t, "g-1", fx.manager.Session().ID)
		assert.Equal(t, entity.ModeSingle, fx.manager.Session().Mode)
	})

	t.Run("Join while disconnected defers the room join", func(t *testing.T) {
		// Given: A channel that is down
		fx := newTestManager(t)
		fx.channel.connected.Store(false)

		fx.remote.EXPECT().JoinGame(mock.Anything, "AB12").Return("g-3", nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-3").Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()

		// When: Joining
		require.NoError(t, fx.manager.JoinMultiplayer(context.Background(), "AB12"))

		// Then: The room is not joined yet
		assert.Equal(t, RoomUnjoined, fx.manager.RoomState())

		// When: The channel connects
		fx.expectRoom(websocket.EventJoin, "g-3").Once()
		fx.channel.connect()

		// Then: The room is joined
		assert.Equal(t, RoomJoined, fx.manager.RoomState())
	})
}

func TestGameManager_SubmitMove(t *testing.T) {
	ctx := context.Background()
	center := entity.Coord{X: 1, Y: 1, Z: 1}

	t.Run("Accepted move is followed by a refetch", func(t *testing.T) {
		// Given: A running single player game
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")

		fx.remote.EXPECT().SubmitMove(mock.Anything, "g-1", center).Return(nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-1").Return(snapshot(entity.PlayerX, entity.StatusActive, map[entity.Coord]entity.Mark{
			center:             entity.PlayerX,
			{X: 0, Y: 0, Z: 0}: entity.PlayerO,
		}), nil).Once()

		// When: Moving to the center
		err := fx.manager.SubmitMove(ctx, center)

		// Then: The board reflects both moves
		require.NoError(t, err)

		session := fx.manager.Session()
		assert.Equal(t, entity.PlayerX, session.Board.At(center))
		assert.Equal(t, entity.PlayerO, session.Board.At(entity.Coord{}))
		assert.False(t, fx.manager.Busy())
	})

	t.Run("Not your turn sends nothing", func(t *testing.T) {
		// Given: A joined double game where X is to move
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")

		// When: O tries to move
		err := fx.manager.SubmitMove(ctx, center)

		// Then: It is refused locally
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Waiting game refuses moves", func(t *testing.T) {
		// Given: A hosted game without an opponent
		fx := newTestManager(t)
		fx.hostDouble(t, "g-2", "AB12")

		// When: The host tries to move
		err := fx.manager.SubmitMove(ctx, center)

		// Then: It is refused locally
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Occupied and out of range cells are refused", func(t *testing.T) {
		// Given: A single game with the center taken
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")
		fx.channel.push(t, websocket.EventGameUpdate, snapshot(entity.PlayerX, entity.StatusActive, map[entity.Coord]entity.Mark{
			center:             entity.PlayerO,
			{X: 0, Y: 0, Z: 0}: entity.PlayerX,
		}))

		// When/Then: Both are illegal
		require.ErrorIs(t, fx.manager.SubmitMove(ctx, center), apperror.ErrCellOccupied)
		require.ErrorIs(t, fx.manager.SubmitMove(ctx, entity.Coord{X: 3}), apperror.ErrInvalidCell)
	})

	t.Run("No session means no move", func(t *testing.T) {
		// Given: A fresh manager
		fx := newTestManager(t)

		// When: Moving
		err := fx.manager.SubmitMove(ctx, center)

		// Then: It is refused locally
		require.ErrorIs(t, err, apperror.ErrNoSession)
	})

	t.Run("Rejected move still refetches", func(t *testing.T) {
		// Given: A single game whose service rejects the move
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")

		fx.remote.EXPECT().SubmitMove(mock.Anything, "g-1", center).
			Return(&apperror.RequestError{Op: "submit move", StatusCode: 400, Message: "Invalid move"}).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-1").Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()

		// When: Moving
		err := fx.manager.SubmitMove(ctx, center)

		// Then: The failure is reported and the board stays authoritative
		require.ErrorIs(t, err, apperror.ErrRequestFailure)
		assert.True(t, fx.manager.Session().Board.IsEmpty())
	})

	t.Run("Second move while one is in flight is refused", func(t *testing.T) {
		// Given: A move that blocks in the service
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")

		release := make(chan struct{})
		started := make(chan struct{})

		fx.remote.EXPECT().SubmitMove(mock.Anything, "g-1", center).RunAndReturn(func(context.Context, string, entity.Coord) error {
			close(started)
			<-release
			return nil
		}).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-1").Return(snapshot(entity.PlayerO, entity.StatusActive, map[entity.Coord]entity.Mark{
			center: entity.PlayerX,
		}), nil).Once()

		done := make(chan error, 1)
		go func() {
			done <- fx.manager.SubmitMove(ctx, center)
		}()
		<-started

		// When: A second move is attempted
		err := fx.manager.SubmitMove(ctx, entity.Coord{})

		// Then: It is refused and the first one completes
		require.ErrorIs(t, err, apperror.ErrMoveInFlight)
		assert.True(t, fx.manager.Busy())

		close(release)
		require.NoError(t, <-done)
		assert.False(t, fx.manager.Busy())
	})

	t.Run("Refetch for a replaced session is discarded", func(t *testing.T) {
		// Given: A double game where a rematch lands while the move refetch is in flight
		fx := newTestManager(t)
		fx.hostDouble(t, "g-2", "AB12")
		fx.channel.push(t, websocket.EventGameUpdate, snapshot(entity.PlayerX, entity.StatusActive, nil))

		fx.remote.EXPECT().SubmitMove(mock.Anything, "g-2", center).Return(nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-9").Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-2").RunAndReturn(func(context.Context, string) (*entity.Snapshot, error) {
			fx.channel.push(t, websocket.EventSwitchGame, websocket.SwitchGamePayload{GameID: "g-9"})

			return snapshot(entity.PlayerO, entity.StatusActive, map[entity.Coord]entity.Mark{center: entity.PlayerX}), nil
		}).Once()

		// When: Moving
		err := fx.manager.SubmitMove(ctx, center)

		// Then: The late response does not touch the new session
		require.NoError(t, err)

		session := fx.manager.Session()
		assert.Equal(t, "g-9", session.ID)
		assert.True(t, session.Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, session.Turn)
	})
}

func TestGameManager_PushEvents(t *testing.T) {
	t.Run("Diagonal win finishes the game", func(t *testing.T) {
		// Given: A single player game
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")

		line := []entity.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}}
		update := snapshot(entity.EmptyCell, entity.StatusFinished, map[entity.Coord]entity.Mark{
			line[0]:            entity.PlayerX,
			line[1]:            entity.PlayerX,
			line[2]:            entity.PlayerX,
			{X: 0, Y: 0, Z: 1}: entity.PlayerO,
			{X: 0, Y: 1, Z: 0}: entity.PlayerO,
		})
		update.Winner = entity.PlayerX
		update.WinLine = line

		// When: The service pushes the winning board
		fx.channel.push(t, websocket.EventGameUpdate, update)

		// Then: The session is finished with the line highlighted
		session := fx.manager.Session()
		assert.Equal(t, entity.PlayerX, session.Winner)
		assert.Equal(t, line, session.WinLine)
		assert.Equal(t, entity.EmptyCell, session.Turn)
		assert.Equal(t, entity.StatusFinished, session.Status)
		require.ErrorIs(t, fx.manager.SubmitMove(context.Background(), entity.Coord{X: 2}), apperror.ErrGameFinished)
	})

	t.Run("Update with no session attached is ignored", func(t *testing.T) {
		// Given: A fresh manager
		fx := newTestManager(t)

		// When: A game_update arrives
		fx.channel.push(t, websocket.EventGameUpdate, snapshot(entity.PlayerO, entity.StatusActive, map[entity.Coord]entity.Mark{{X: 0, Y: 0, Z: 0}: entity.PlayerX}))

		// Then: Nothing is attached
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Opponent leaving sends this side home", func(t *testing.T) {
		// Given: A running double game with a notifier
		notifier := mockedUseCase.NewMockNotifier(t)
		notifier.EXPECT().SessionChanged(mock.Anything).Maybe()
		notifier.EXPECT().OpponentLeft().Once()

		fx := newTestManager(t, WithNotifier(notifier))
		fx.joinDouble(t, "g-3", "AB12")
		fx.expectRoom(websocket.EventLeave, "g-3").Once()

		// When: player_left arrives
		fx.channel.push(t, websocket.EventPlayerLeft, websocket.PlayerLeftPayload{Status: "waiting"})

		// Then: The session is gone and our leave went out
		assert.False(t, fx.manager.Session().IsAttached())
		assert.Equal(t, RoomUnjoined, fx.manager.RoomState())
	})

	t.Run("Switch refetch is bounded by the request timeout", func(t *testing.T) {
		// Given: A running double game with a short request timeout
		fx := newTestManager(t, WithRequestTimeout(time.Second))
		fx.joinDouble(t, "g-3", "AB12")

		var deadline time.Time
		fx.remote.EXPECT().FetchState(mock.Anything, "g-11").RunAndReturn(func(ctx context.Context, _ string) (*entity.Snapshot, error) {
			deadline, _ = ctx.Deadline()
			return snapshot(entity.PlayerX, entity.StatusActive, nil), nil
		}).Once()

		// When: switch_game names a new session
		pushed := time.Now()
		fx.channel.push(t, websocket.EventSwitchGame, websocket.SwitchGamePayload{GameID: "g-11"})

		// Then: The refetch carried the configured deadline
		assert.Equal(t, "g-11", fx.manager.Session().ID)
		assert.WithinDuration(t, pushed.Add(time.Second), deadline, 500*time.Millisecond)
	})

	t.Run("Switch to the same session is a no-op", func(t *testing.T) {
		// Given: A running double game
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")

		// When: switch_game names the current session
		fx.channel.push(t, websocket.EventSwitchGame, websocket.SwitchGamePayload{GameID: "g-3"})

		// Then: Nothing is refetched
		assert.Equal(t, "g-3", fx.manager.Session().ID)
	})
}

func TestGameManager_Rematch(t *testing.T) {
	t.Run("Announces the new game and follows it", func(t *testing.T) {
		// Given: A finished double game
		fx := newTestManager(t)
		fx.hostDouble(t, "g-2", "AB12")

		finished := snapshot(entity.EmptyCell, entity.StatusFinished, map[entity.Coord]entity.Mark{
			{X: 0, Y: 0, Z: 0}: entity.PlayerX, {X: 1, Y: 1, Z: 1}: entity.PlayerX, {X: 2, Y: 2, Z: 2}: entity.PlayerX,
		})
		finished.Winner = entity.PlayerX
		fx.channel.push(t, websocket.EventGameUpdate, finished)

		fx.remote.EXPECT().CreateGame(mock.Anything, entity.ModeDouble).Return(&entity.CreatedGame{ID: "g-10", JoinCode: "CD34"}, nil).Once()
		fx.channel.EXPECT().Emit(websocket.EventNewGame, websocket.NewGamePayload{OldGameID: "g-2", NewGameID: "g-10"}).Return(nil).Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-10").Return(snapshot(entity.PlayerX, entity.StatusActive, nil), nil).Once()

		// When: Asking for a rematch
		err := fx.manager.Rematch(context.Background())

		// Then: The session moved with a clean board and the same mark
		require.NoError(t, err)

		session := fx.manager.Session()
		assert.Equal(t, "g-10", session.ID)
		assert.Equal(t, entity.PlayerX, session.LocalMark)
		assert.Equal(t, entity.EmptyCell, session.Winner)
		assert.Empty(t, session.WinLine)
		assert.Equal(t, entity.StatusActive, session.Status)

		// When: The service echoes switch_game back
		fx.channel.push(t, websocket.EventSwitchGame, websocket.SwitchGamePayload{GameID: "g-10"})

		// Then: Nothing changes
		assert.Equal(t, "g-10", fx.manager.Session().ID)
	})

	t.Run("Without a session there is nothing to rematch", func(t *testing.T) {
		// Given: A fresh manager
		fx := newTestManager(t)

		// When: Asking for a rematch
		err := fx.manager.Rematch(context.Background())

		// Then: It is refused
		require.ErrorIs(t, err, apperror.ErrNoSession)
	})
}

func TestGameManager_Teardown(t *testing.T) {
	t.Run("Leave is sent once across every path", func(t *testing.T) {
		// Given: A running double game
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")
		fx.expectRoom(websocket.EventLeave, "g-3").Once()

		// When: Every teardown path fires
		first := fx.manager.Teardown(TeardownProcessExit)
		fx.manager.Leave()
		last := fx.manager.Teardown(TeardownUnmount)

		// Then: Only the first one sent anything
		assert.True(t, first)
		assert.False(t, last)
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Single player leaves without a signal", func(t *testing.T) {
		// Given: A single player game
		fx := newTestManager(t)
		fx.startSingle(t, "g-1")

		// When: Leaving
		sent := fx.manager.Teardown(TeardownExplicit)

		// Then: Local state is cleared, nothing is sent
		assert.False(t, sent)
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Owner context ending tears the session down", func(t *testing.T) {
		// Given: A double game bound to a context
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")
		fx.expectRoom(websocket.EventLeave, "g-3").Once()

		ctx, cancel := context.WithCancel(context.Background())
		release := fx.manager.Bind(ctx)

		// When: The context ends
		cancel()

		// Then: The session is torn down, and release does not send again
		require.Eventually(t, func() bool {
			return !fx.manager.Session().IsAttached()
		}, time.Second, 10*time.Millisecond)
		release()
	})

	t.Run("Leave then create gives a new session and mark", func(t *testing.T) {
		// Given: A joiner that leaves
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")
		fx.expectRoom(websocket.EventLeave, "g-3").Once()
		fx.manager.Leave()

		// When: It hosts a new game
		fx.hostDouble(t, "g-4", "EF56")

		// Then: The id is new and the mark is the creator's
		session := fx.manager.Session()
		assert.Equal(t, "g-4", session.ID)
		assert.Equal(t, entity.PlayerX, session.LocalMark)
	})

	t.Run("Starting a game replaces the attached one", func(t *testing.T) {
		// Given: A running double game
		fx := newTestManager(t)
		fx.joinDouble(t, "g-3", "AB12")
		fx.expectRoom(websocket.EventLeave, "g-3").Once()

		// When: A single player game starts
		fx.startSingle(t, "g-5")

		// Then: The old room was left
		assert.Equal(t, "g-5", fx.manager.Session().ID)
	})
}

func TestGameManager_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("Single sessions are saved and cleared", func(t *testing.T) {
		// Given: A manager with a repository
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		repo.EXPECT().Save(mock.Anything, "client-1", mock.MatchedBy(func(session *entity.Session) bool {
			return session.ID == "g-1"
		})).Return(nil)

		// When: Starting and leaving a single game
		fx.startSingle(t, "g-1")

		repo.EXPECT().Delete(mock.Anything, "client-1").Return(nil).Once()
		fx.manager.Leave()

		// Then: The repository saw both
		repo.AssertCalled(t, "Save", mock.Anything, "client-1", mock.Anything)
	})

	t.Run("Double sessions are never saved", func(t *testing.T) {
		// Given: A manager with a repository that expects no save
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		// When: Hosting a double game and leaving it
		fx.hostDouble(t, "g-2", "AB12")

		repo.EXPECT().Delete(mock.Anything, "client-1").Return(nil).Once()
		fx.expectRoom(websocket.EventLeave, "g-2").Once()
		fx.manager.Leave()

		// Then: Only the delete reached the repository
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Leave during a slow save ends with the session deleted", func(t *testing.T) {
		// Given: A single game whose next save blocks
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		var (
			mu    sync.Mutex
			calls []string
		)

		record := func(call string) {
			mu.Lock()
			defer mu.Unlock()

			calls = append(calls, call)
		}

		var blockSave atomic.Bool
		saving := make(chan struct{})
		release := make(chan struct{})

		repo.EXPECT().Save(mock.Anything, "client-1", mock.Anything).RunAndReturn(func(_ context.Context, _ string, session *entity.Session) error {
			record("save:" + session.ID)

			if blockSave.CompareAndSwap(true, false) {
				close(saving)
				<-release
			}

			return nil
		})
		repo.EXPECT().Delete(mock.Anything, "client-1").RunAndReturn(func(context.Context, string) error {
			record("delete")
			return nil
		})

		fx.startSingle(t, "g-1")
		blockSave.Store(true)

		data, err := json.Marshal(snapshot(entity.PlayerO, entity.StatusActive, map[entity.Coord]entity.Mark{{X: 1, Y: 1, Z: 1}: entity.PlayerX}))
		require.NoError(t, err)

		fx.channel.mu.Lock()
		onUpdate := fx.channel.handlers[websocket.EventGameUpdate]
		fx.channel.mu.Unlock()

		updated := make(chan struct{})
		go func() {
			defer close(updated)
			onUpdate(data)
		}()
		<-saving

		// When: Leaving while that save is still running
		var left atomic.Bool
		go func() {
			fx.manager.Leave()
			left.Store(true)
		}()

		// Then: Leave waits for the save, and the delete lands last
		assert.Never(t, left.Load, 50*time.Millisecond, 5*time.Millisecond)

		close(release)
		<-updated
		require.Eventually(t, left.Load, time.Second, 5*time.Millisecond)

		mu.Lock()
		defer mu.Unlock()

		require.NotEmpty(t, calls)
		assert.Equal(t, "delete", calls[len(calls)-1])
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Resume reattaches the saved single session", func(t *testing.T) {
		// Given: A saved single session
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		repo.EXPECT().Get(mock.Anything, "client-1").Return(&entity.Session{
			ID: "g-7", Mode: entity.ModeSingle, LocalMark: entity.PlayerX, Status: entity.StatusActive,
		}, nil).Once()
		repo.EXPECT().Save(mock.Anything, "client-1", mock.Anything).Return(nil)
		fx.expectRoom(websocket.EventJoin, "g-7").Once()
		fx.remote.EXPECT().FetchState(mock.Anything, "g-7").Return(snapshot(entity.PlayerX, entity.StatusActive, map[entity.Coord]entity.Mark{
			{X: 1, Y: 1, Z: 1}: entity.PlayerX, {X: 0, Y: 0, Z: 0}: entity.PlayerO,
		}), nil).Once()

		// When: Resuming
		resumed, err := fx.manager.Resume(ctx)

		// Then: The board comes back from the service
		require.NoError(t, err)
		assert.True(t, resumed)
		assert.Equal(t, "g-7", fx.manager.Session().ID)
		assert.Equal(t, 2, fx.manager.Session().Board.Count())
	})

	t.Run("Saved double sessions are dropped", func(t *testing.T) {
		// Given: A saved double session
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		repo.EXPECT().Get(mock.Anything, "client-1").Return(&entity.Session{ID: "g-8", Mode: entity.ModeDouble}, nil).Once()
		repo.EXPECT().Delete(mock.Anything, "client-1").Return(nil).Once()

		// When: Resuming
		resumed, err := fx.manager.Resume(ctx)

		// Then: Nothing is attached
		require.NoError(t, err)
		assert.False(t, resumed)
		assert.False(t, fx.manager.Session().IsAttached())
	})

	t.Run("Nothing saved resumes nothing", func(t *testing.T) {
		// Given: An empty repository
		repo := mockedUseCase.NewMocksessionRepo(t)
		fx := newTestManager(t, WithSessionRepository(repo, "client-1"))

		repo.EXPECT().Get(mock.Anything, "client-1").Return(nil, apperror.ErrNoSavedSession).Once()

		// When: Resuming
		resumed, err := fx.manager.Resume(ctx)

		// Then: No error, no session
		require.NoError(t, err)
		assert.False(t, resumed)
	})

	t.Run("Resume without a repository is a no-op", func(t *testing.T) {
		// Given: A manager without persistence
		fx := newTestManager(t)

		// When: Resuming
		resumed, err := fx.manager.Resume(ctx)

		// Then: Nothing happens
		require.NoError(t, err)
		assert.False(t, resumed)
	})
}
