package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/websocket"
)

type RoomState int

const (
	RoomUnjoined RoomState = iota
	RoomJoining
	RoomJoined
)

func (that RoomState) String() string {
	switch that {
	case RoomJoining:
		return "joining"
	case RoomJoined:
		return "joined"
	default:
		return "unjoined"
	}
}

type stateFetcher interface {
	FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error)
}

// RoomManager keeps push-channel room membership in line with the attached session.
type RoomManager struct {
	logger  *slog.Logger
	channel pushChannel
	model   *tictactoe.Model
	fetcher stateFetcher

	mu        sync.Mutex
	sessionID string
	mode      entity.Mode
	state     RoomState
	removers  []func()
}

func NewRoomManager(logger *slog.Logger, channel pushChannel, model *tictactoe.Model, fetcher stateFetcher, owner string) *RoomManager {
	room := &RoomManager{
		logger:  logger.With("component", "room"),
		channel: channel,
		model:   model,
		fetcher: fetcher,
	}

	room.removers = append(room.removers,
		channel.OnConnect(owner, room.onConnect),
		channel.OnDisconnect(owner, room.onDisconnect),
	)

	return room
}

// Attach - joins the room now if the channel is up, otherwise on the next connect.
func (that *RoomManager) Attach(sessionID string, mode entity.Mode) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessionID = sessionID
	that.mode = mode
	that.state = RoomUnjoined

	if !that.channel.Connected() {
		that.logger.Info("push channel down, join deferred", "session_id", sessionID)
		return
	}

	that.joinLocked()
}

// Detach - forgets the room. Emits leave for double sessions; returns whether it did.
func (that *RoomManager) Detach() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	sessionID, mode := that.sessionID, that.mode

	that.sessionID = ""
	that.mode = ""
	that.state = RoomUnjoined

	if sessionID == "" || mode != entity.ModeDouble {
		return false
	}

	// best effort, teardown does not wait for the service
	if err := that.channel.Emit(websocket.EventLeave, websocket.RoomPayload{GameID: sessionID}); err != nil {
		that.logger.Warn("failed to send leave", "session_id", sessionID, "error", err)
	}

	return true
}

// HandleSwitch - rematch: re-point the session and resync. Membership carries over on the service side.
func (that *RoomManager) HandleSwitch(ctx context.Context, newSessionID string) error {
	log := that.logger.With("method", "HandleSwitch")

	that.mu.Lock()
	if that.sessionID == "" || newSessionID == "" {
		that.mu.Unlock()
		log.Warn("switch_game ignored", "new_session_id", newSessionID, "error", apperror.ErrRoomDesync)

		return apperror.ErrRoomDesync
	}
	that.sessionID = newSessionID
	that.mu.Unlock()

	if _, err := that.model.Dispatch(tictactoe.Switched{SessionID: newSessionID}); err != nil {
		return fmt.Errorf("failed to switch session: %w", err)
	}

	log.Info("switched session", "session_id", newSessionID)

	return syncState(ctx, log, that.fetcher, that.model, newSessionID)
}

func (that *RoomManager) State() RoomState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *RoomManager) SessionID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sessionID
}

func (that *RoomManager) Close() {
	for _, remove := range that.removers {
		remove()
	}
}

func (that *RoomManager) onConnect() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.sessionID == "" || that.state == RoomJoined {
		return
	}

	that.joinLocked()
}

func (that *RoomManager) onDisconnect() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = RoomUnjoined
}

// joinLocked - no ack exists, so a written join counts as joined.
func (that *RoomManager) joinLocked() {
	that.state = RoomJoining

	if err := that.channel.Emit(websocket.EventJoin, websocket.RoomPayload{GameID: that.sessionID}); err != nil {
		that.logger.Warn("failed to join room, retrying on reconnect", "session_id", that.sessionID, "error", err)
		that.state = RoomUnjoined

		return
	}

	that.state = RoomJoined
	that.logger.Info("joined room", "session_id", that.sessionID)
}

// syncState - fetchState folded in under the id it was issued for.
func syncState(ctx context.Context, log *slog.Logger, fetcher stateFetcher, model *tictactoe.Model, sessionID string) error {
	snapshot, err := fetcher.FetchState(ctx, sessionID)
	if err != nil {
		log.Error("failed to fetch state", "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to fetch state: %w", err)
	}

	if _, err = model.Dispatch(tictactoe.StateFetched{SessionID: sessionID, Snapshot: *snapshot}); err != nil {
		if errors.Is(err, apperror.ErrStaleSnapshot) || errors.Is(err, apperror.ErrRoomDesync) {
			log.Debug("state discarded", "session_id", sessionID, "reason", err)
			return nil
		}

		return fmt.Errorf("failed to apply state: %w", err)
	}

	return nil
}
