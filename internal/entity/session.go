package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
)

var ErrInvalidCoord = errors.New("invalid coordinate")

// Session is the client's view of one remote game.
type Session struct {
	ID        string  `json:"id"`
	Mode      Mode    `json:"mode"`
	Board     Board   `json:"board"`
	Turn      Mark    `json:"turn,omitempty"`
	Winner    Mark    `json:"winner,omitempty"`
	WinLine   []Coord `json:"win_line,omitempty"`
	Status    Status  `json:"status"`
	LocalMark Mark    `json:"local_mark"`
	JoinCode  string  `json:"join_code,omitempty"`
}

// Snapshot is the authoritative state as served by GET /game/{id}/state and game_update.
type Snapshot struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"current_player"`
	Winner  Mark    `json:"winner"`
	Status  Status  `json:"status"`
	WinLine []Coord `json:"win_positions"`
}

// CreatedGame is the answer to POST /game/new.
type CreatedGame struct {
	ID       string `json:"gameId"`
	JoinCode string `json:"joinCode,omitempty"`
}

func (that Session) IsAttached() bool {
	return that.ID != ""
}

func (that Session) IsFinished() bool {
	return that.Winner != EmptyCell
}

func (that Session) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that Session) IsDouble() bool {
	return that.Mode == ModeDouble
}

// IsMyTurn - single player only ever moves as X, double player moves as its local mark.
func (that Session) IsMyTurn() bool {
	if that.Mode == ModeSingle {
		return that.Turn == PlayerX
	}

	return that.LocalMark != EmptyCell && that.Turn == that.LocalMark
}

// ConfirmMovable - client-side gates checked before a move is sent.
func (that Session) ConfirmMovable(cell Coord) error {
	switch {
	case !that.IsAttached():
		return apperror.ErrNoSession
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case !that.IsMyTurn():
		return apperror.ErrNotYourTurn
	case !cell.IsValid():
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	case that.Board.At(cell) != EmptyCell:
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	default:
		return nil
	}
}

// Clone - deep copy, safe to hand to readers.
func (that Session) Clone() Session {
	that.WinLine = slices.Clone(that.WinLine)
	return that
}
