package tictactoe

import "github.com/rocketscienceinc/tictactoe3d-client/internal/entity"

// Action is one input to Reduce. Both the request path and the push path speak it.
type Action interface {
	isAction()
}

// Attached - a session was created, joined or resumed locally.
type Attached struct {
	SessionID string
	Mode      entity.Mode
	LocalMark entity.Mark
	JoinCode  string
	Status    entity.Status
}

// StateFetched - response of a fetchState issued against SessionID.
type StateFetched struct {
	SessionID string
	Snapshot  entity.Snapshot
}

// GameUpdated - game_update pushed into the attached session's room.
type GameUpdated struct {
	Snapshot entity.Snapshot
}

// Switched - rematch moved the room to a new session.
type Switched struct {
	SessionID string
}

// Reset - back to the unattached state.
type Reset struct{}

func (Attached) isAction()     {}
func (StateFetched) isAction() {}
func (GameUpdated) isAction()  {}
func (Switched) isAction()     {}
func (Reset) isAction()        {}
