package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

// Outbound events.
const (
	EventJoin    = "join"
	EventLeave   = "leave"
	EventNewGame = "new_game"
)

// Inbound events.
const (
	EventGameUpdate = "game_update"
	EventSwitchGame = "switch_game"
	EventPlayerLeft = "player_left"
)

// Message is the envelope of every frame on the push channel.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type RoomPayload struct {
	GameID string `json:"gameId"`
}

type NewGamePayload struct {
	OldGameID string `json:"oldGameId"`
	NewGameID string `json:"newGameId"`
}

type SwitchGamePayload struct {
	GameID string `json:"gameId"`
}

type PlayerLeftPayload struct {
	Status string `json:"status,omitempty"`
}

type GameUpdatePayload = entity.Snapshot
