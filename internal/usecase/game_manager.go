package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/websocket"
)

const (
	persistTimeout        = 2 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

type remoteSession interface {
	CreateGame(ctx context.Context, mode entity.Mode) (*entity.CreatedGame, error)
	JoinGame(ctx context.Context, code string) (string, error)
	FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error)
	SubmitMove(ctx context.Context, gameID string, cell entity.Coord) error
}

type sessionRepo interface {
	Save(ctx context.Context, clientID string, session *entity.Session) error
	Get(ctx context.Context, clientID string) (*entity.Session, error)
	Delete(ctx context.Context, clientID string) error
}

// Notifier receives session changes. Calls come from whichever goroutine applied the change.
type Notifier interface {
	SessionChanged(session entity.Session)
	OpponentLeft()
}

type TeardownPath string

const (
	TeardownExplicit     TeardownPath = "explicit"
	TeardownProcessExit  TeardownPath = "process-exit"
	TeardownUnmount      TeardownPath = "unmount"
	TeardownOpponentLeft TeardownPath = "opponent-left"
	TeardownReplaced     TeardownPath = "replaced"
)

type GameManager struct {
	logger   *slog.Logger
	remote   remoteSession
	channel  pushChannel
	model    *tictactoe.Model
	room     *RoomManager
	subs     *Subscriptions
	repo     sessionRepo
	clientID string
	notifier Notifier
	timeout  time.Duration

	lifecycle      sync.Mutex
	moveInFlight   atomic.Bool
	removeListener func()
}

type Option func(*GameManager)

// WithSessionRepository - persist single-player sessions under clientID so they can be resumed.
func WithSessionRepository(repo sessionRepo, clientID string) Option {
	return func(that *GameManager) {
		that.repo = repo
		that.clientID = clientID
	}
}

// WithRequestTimeout - bounds the refetch that follows a pushed switch_game.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(that *GameManager) {
		if timeout > 0 {
			that.timeout = timeout
		}
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(that *GameManager) {
		that.notifier = notifier
	}
}

func NewGameManager(logger *slog.Logger, remote remoteSession, channel pushChannel, opts ...Option) *GameManager {
	owner := "game-manager-" + uuid.NewString()
	model := tictactoe.NewModel()

	manager := &GameManager{
		logger:  logger.With("component", "game_manager"),
		remote:  remote,
		channel: channel,
		model:   model,
		timeout: defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(manager)
	}

	manager.room = NewRoomManager(logger, channel, model, remote, owner)
	manager.subs = NewSubscriptions(logger, channel, owner)

	BindJSON(manager.subs, websocket.EventGameUpdate, manager.onGameUpdate)
	BindJSON(manager.subs, websocket.EventSwitchGame, manager.onSwitchGame)
	BindJSON(manager.subs, websocket.EventPlayerLeft, manager.onPlayerLeft)

	manager.removeListener = model.OnChange(manager.onSessionChanged)

	return manager
}

func (that *GameManager) Session() entity.Session {
	return that.model.Session()
}

// Busy - a move request is outstanding.
func (that *GameManager) Busy() bool {
	return that.moveInFlight.Load()
}

func (that *GameManager) RoomState() RoomState {
	return that.room.State()
}

func (that *GameManager) StartSinglePlayer(ctx context.Context) error {
	log := that.logger.With("method", "StartSinglePlayer")

	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	created, err := that.remote.CreateGame(ctx, entity.ModeSingle)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return fmt.Errorf("failed to start single player game: %w", err)
	}

	that.teardownLocked(TeardownReplaced)

	return that.attachLocked(ctx, log, tictactoe.Attached{
		SessionID: created.ID,
		Mode:      entity.ModeSingle,
		LocalMark: entity.PlayerX,
		Status:    entity.StatusActive,
	})
}

// CreateMultiplayer - hosts a double session. The creator plays X and waits for an opponent.
func (that *GameManager) CreateMultiplayer(ctx context.Context) error {
	log := that.logger.With("method", "CreateMultiplayer")

	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	created, err := that.remote.CreateGame(ctx, entity.ModeDouble)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return fmt.Errorf("failed to create multiplayer game: %w", err)
	}

	that.teardownLocked(TeardownReplaced)

	return that.attachLocked(ctx, log, tictactoe.Attached{
		SessionID: created.ID,
		Mode:      entity.ModeDouble,
		LocalMark: entity.PlayerX,
		JoinCode:  created.JoinCode,
		Status:    entity.StatusWaiting,
	})
}

func (that *GameManager) JoinMultiplayer(ctx context.Context, code string) error {
	log := that.logger.With("method", "JoinMultiplayer")

	code = strings.TrimSpace(code)
	if code == "" {
		log.Debug("join ignored", "reason", apperror.ErrEmptyJoinCode)
		return apperror.IllegalMove(apperror.ErrEmptyJoinCode)
	}

	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	gameID, err := that.remote.JoinGame(ctx, code)
	if err != nil {
		log.Error("failed to join game", "code", code, "error", err)
		return fmt.Errorf("failed to join multiplayer game: %w", err)
	}

	that.teardownLocked(TeardownReplaced)

	return that.attachLocked(ctx, log, tictactoe.Attached{
		SessionID: gameID,
		Mode:      entity.ModeDouble,
		LocalMark: entity.PlayerO,
		Status:    entity.StatusActive,
	})
}

// SubmitMove - sends a move after the local gates pass, then refetches whatever the answer was.
func (that *GameManager) SubmitMove(ctx context.Context, cell entity.Coord) error {
	log := that.logger.With("method", "SubmitMove")

	session := that.model.Session()
	if err := session.ConfirmMovable(cell); err != nil {
		log.Debug("move ignored", "cell", cell.String(), "reason", err)
		return apperror.IllegalMove(err)
	}

	if !that.moveInFlight.CompareAndSwap(false, true) {
		log.Debug("move ignored", "cell", cell.String(), "reason", apperror.ErrMoveInFlight)
		return apperror.IllegalMove(apperror.ErrMoveInFlight)
	}
	defer that.moveInFlight.Store(false)

	moveErr := that.remote.SubmitMove(ctx, session.ID, cell)
	if moveErr != nil {
		log.Error("move rejected", "session_id", session.ID, "cell", cell.String(), "error", moveErr)
	}

	syncErr := syncState(ctx, log, that.remote, that.model, session.ID)

	switch {
	case moveErr != nil:
		return fmt.Errorf("failed to submit move: %w", moveErr)
	case syncErr != nil:
		return fmt.Errorf("failed to sync after move: %w", syncErr)
	}

	return nil
}

// Rematch - new session in the same mode; the room follows it through new_game.
func (that *GameManager) Rematch(ctx context.Context) error {
	log := that.logger.With("method", "Rematch")

	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	session := that.model.Session()
	if !session.IsAttached() {
		return apperror.ErrNoSession
	}

	created, err := that.remote.CreateGame(ctx, session.Mode)
	if err != nil {
		log.Error("failed to create rematch", "error", err)
		return fmt.Errorf("failed to create rematch: %w", err)
	}

	payload := websocket.NewGamePayload{OldGameID: session.ID, NewGameID: created.ID}
	if err = that.channel.Emit(websocket.EventNewGame, payload); err != nil {
		log.Warn("failed to announce rematch", "session_id", created.ID, "error", err)
	}

	if err = that.room.HandleSwitch(ctx, created.ID); err != nil {
		return fmt.Errorf("failed to switch to rematch: %w", err)
	}

	return nil
}

// Leave - explicit teardown. Local state is cleared whatever the network does.
func (that *GameManager) Leave() {
	that.Teardown(TeardownExplicit)
}

// Teardown - clears the session and leaves its room. Reports whether a leave was sent.
// Only the first path to run for a session sends anything.
func (that *GameManager) Teardown(path TeardownPath) bool {
	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	return that.teardownLocked(path)
}

// Bind - ties the session to its owner's lifetime. The returned release runs the
// unmount teardown synchronously; ctx ending runs it as well.
func (that *GameManager) Bind(ctx context.Context) func() {
	var once sync.Once

	release := func() {
		once.Do(func() {
			that.Teardown(TeardownUnmount)
		})
	}

	stop := context.AfterFunc(ctx, release)

	return func() {
		stop()
		release()
	}
}

// Resume - re-attaches the saved single-player session, if there is one.
func (that *GameManager) Resume(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "Resume")

	if that.repo == nil {
		return false, nil
	}

	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	saved, err := that.repo.Get(ctx, that.clientID)
	if err != nil {
		if errors.Is(err, apperror.ErrNoSavedSession) {
			return false, nil
		}

		log.Error("failed to load saved session", "error", err)
		return false, fmt.Errorf("failed to load saved session: %w", err)
	}

	if saved.Mode != entity.ModeSingle || !saved.IsAttached() {
		log.Info("saved session dropped", "session_id", saved.ID, "mode", saved.Mode)

		if err = that.repo.Delete(ctx, that.clientID); err != nil {
			log.Warn("failed to delete saved session", "error", err)
		}

		return false, nil
	}

	that.teardownLocked(TeardownReplaced)

	err = that.attachLocked(ctx, log, tictactoe.Attached{
		SessionID: saved.ID,
		Mode:      saved.Mode,
		LocalMark: entity.PlayerX,
		Status:    entity.StatusActive,
	})
	if err != nil {
		that.teardownLocked(TeardownReplaced)
		return false, err
	}

	return true, nil
}

// Close - detaches every push handler. Does not tear the session down.
func (that *GameManager) Close() {
	that.subs.Close()
	that.room.Close()
	that.removeListener()
}

func (that *GameManager) attachLocked(ctx context.Context, log *slog.Logger, attached tictactoe.Attached) error {
	if _, err := that.model.Dispatch(attached); err != nil {
		return fmt.Errorf("failed to attach session: %w", err)
	}

	log.Info("session attached", "session_id", attached.SessionID, "mode", attached.Mode, "mark", attached.LocalMark)

	that.room.Attach(attached.SessionID, attached.Mode)

	return syncState(ctx, log, that.remote, that.model, attached.SessionID)
}

// teardownLocked - the model is reset before leave goes out, so our own player_left echo finds nothing attached.
func (that *GameManager) teardownLocked(path TeardownPath) bool {
	session := that.model.Session()
	if !session.IsAttached() {
		return false
	}

	if _, err := that.model.Dispatch(tictactoe.Reset{}); err != nil {
		that.logger.Error("failed to reset session", "error", err)
	}

	sent := that.room.Detach()

	that.logger.Info("session torn down", "session_id", session.ID, "path", path, "leave_sent", sent)

	return sent
}

func (that *GameManager) onGameUpdate(snapshot entity.Snapshot) {
	if _, err := that.model.Dispatch(tictactoe.GameUpdated{Snapshot: snapshot}); err != nil {
		if errors.Is(err, apperror.ErrRoomDesync) {
			that.logger.Warn("game_update ignored", "error", err)
			return
		}

		that.logger.Debug("game_update discarded", "reason", err)
	}
}

func (that *GameManager) onSwitchGame(payload websocket.SwitchGamePayload) {
	that.lifecycle.Lock()
	defer that.lifecycle.Unlock()

	if payload.GameID == that.model.SessionID() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err := that.room.HandleSwitch(ctx, payload.GameID); err != nil {
		that.logger.Error("failed to follow switch_game", "session_id", payload.GameID, "error", err)
	}
}

// onPlayerLeft - the opponent is gone, so this side goes home as well.
func (that *GameManager) onPlayerLeft(payload websocket.PlayerLeftPayload) {
	that.lifecycle.Lock()

	session := that.model.Session()
	if !session.IsAttached() {
		that.lifecycle.Unlock()
		that.logger.Warn("player_left ignored", "error", apperror.ErrRoomDesync)

		return
	}

	that.logger.Info("opponent left", "session_id", session.ID, "status", payload.Status)
	that.teardownLocked(TeardownOpponentLeft)
	that.lifecycle.Unlock()

	if that.notifier != nil {
		that.notifier.OpponentLeft()
	}
}

func (that *GameManager) onSessionChanged(session entity.Session) {
	that.persist(session)

	if that.notifier != nil {
		that.notifier.SessionChanged(session)
	}
}

func (that *GameManager) persist(session entity.Session) {
	if that.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	var err error

	switch {
	case !session.IsAttached():
		err = that.repo.Delete(ctx, that.clientID)
	case session.IsDouble():
		return
	default:
		err = that.repo.Save(ctx, that.clientID, &session)
	}

	if err != nil {
		that.logger.Warn("failed to persist session", "session_id", session.ID, "error", err)
	}
}
