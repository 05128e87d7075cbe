package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

// Reduce - folds one action into the session. On error the current session is returned unchanged.
func Reduce(current entity.Session, action Action) (entity.Session, error) {
	switch act := action.(type) {
	case Attached:
		// local mark is fixed for the life of a session
		if current.IsAttached() && current.ID == act.SessionID {
			return current, nil
		}
		return attach(act)
	case StateFetched:
		if !current.IsAttached() {
			return current, apperror.ErrRoomDesync
		}
		// response to a request issued before a switch or a leave
		if act.SessionID != current.ID {
			return current, fmt.Errorf("%w: response for %s, attached to %s", apperror.ErrStaleSnapshot, act.SessionID, current.ID)
		}
		return applySnapshot(current, act.Snapshot)
	case GameUpdated:
		if !current.IsAttached() {
			return current, apperror.ErrRoomDesync
		}
		return applySnapshot(current, act.Snapshot)
	case Switched:
		return switchSession(current, act)
	case Reset:
		return entity.Session{}, nil
	default:
		return current, fmt.Errorf("unknown action %T", action)
	}
}

func attach(act Attached) (entity.Session, error) {
	status := act.Status
	if status == entity.StatusNone {
		status = entity.StatusActive
	}

	// waiting-for-opponent only exists for double mode
	if act.Mode != entity.ModeDouble && status == entity.StatusWaiting {
		status = entity.StatusActive
	}

	return entity.Session{
		ID:        act.SessionID,
		Mode:      act.Mode,
		Turn:      entity.PlayerX,
		Status:    status,
		LocalMark: act.LocalMark,
		JoinCode:  act.JoinCode,
	}, nil
}

func applySnapshot(current entity.Session, snap entity.Snapshot) (entity.Session, error) {
	if snap.Board.Count() < current.Board.Count() {
		return current, fmt.Errorf("%w: %d marks, have %d", apperror.ErrStaleSnapshot, snap.Board.Count(), current.Board.Count())
	}

	if current.IsFinished() && snap.Winner == entity.EmptyCell {
		return current, fmt.Errorf("%w: session already finished", apperror.ErrStaleSnapshot)
	}

	next := current.Clone()
	next.Board = snap.Board
	next.Status = nextStatus(current.Status, snap)

	if snap.Winner != entity.EmptyCell {
		next.Winner = snap.Winner
		next.Turn = entity.EmptyCell
		next.WinLine = winLine(snap)
		next.JoinCode = ""

		return next, nil
	}

	next.Winner = entity.EmptyCell
	next.WinLine = nil

	if snap.Turn.IsPlayer() {
		next.Turn = snap.Turn
	}

	if next.Status == entity.StatusActive {
		next.JoinCode = ""
	}

	return next, nil
}

// nextStatus - waiting turns active only when the service says so, and never goes back.
func nextStatus(current entity.Status, snap entity.Snapshot) entity.Status {
	if snap.Winner != entity.EmptyCell {
		return entity.StatusFinished
	}

	switch snap.Status {
	case entity.StatusActive:
		return entity.StatusActive
	case entity.StatusWaiting:
		if current == entity.StatusActive {
			return entity.StatusActive
		}
		return entity.StatusWaiting
	default:
		return current
	}
}

func winLine(snap entity.Snapshot) []entity.Coord {
	if !snap.Winner.IsPlayer() || len(snap.WinLine) != entity.Size {
		return nil
	}

	line := make([]entity.Coord, 0, entity.Size)
	for _, cell := range snap.WinLine {
		if !cell.IsValid() {
			return nil
		}
		line = append(line, cell)
	}

	return line
}

func switchSession(current entity.Session, act Switched) (entity.Session, error) {
	if !current.IsAttached() {
		return current, apperror.ErrRoomDesync
	}

	// the initiator of a rematch also receives switch_game for the id it already moved to
	if act.SessionID == current.ID {
		return current, nil
	}

	status := current.Status
	if status == entity.StatusFinished {
		status = entity.StatusActive
	}

	return entity.Session{
		ID:        act.SessionID,
		Mode:      current.Mode,
		Turn:      entity.PlayerX,
		Status:    status,
		LocalMark: current.LocalMark,
	}, nil
}
