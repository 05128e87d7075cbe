package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailure = errors.New("request failed")
	ErrIllegalMove    = errors.New("illegal move attempt")
	ErrRoomDesync     = errors.New("event for a session that is not attached")

	ErrNoSession        = errors.New("no session attached")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrMoveInFlight     = errors.New("another move is in flight")
	ErrEmptyJoinCode    = errors.New("join code is empty")
	ErrStaleSnapshot    = errors.New("snapshot is older than the local state")
	ErrChannelClosed    = errors.New("push channel is not connected")
	ErrNoSavedSession   = errors.New("no saved session")
)

// RequestError - transport or server failure of a remote session call.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (that *RequestError) Error() string {
	switch {
	case that.StatusCode != 0 && that.Message != "":
		return fmt.Sprintf("%s: server responded %d: %s", that.Op, that.StatusCode, that.Message)
	case that.Err != nil:
		return fmt.Sprintf("%s: %v", that.Op, that.Err)
	case that.StatusCode != 0:
		return fmt.Sprintf("%s: server responded %d", that.Op, that.StatusCode)
	case that.Message != "":
		return that.Op + ": " + that.Message
	default:
		return that.Op + ": " + ErrRequestFailure.Error()
	}
}

func (that *RequestError) Unwrap() error {
	return that.Err
}

// Is - every RequestError matches ErrRequestFailure.
func (that *RequestError) Is(target error) bool {
	return target == ErrRequestFailure
}

// IllegalMove - wraps the precondition that failed so callers can match both.
func IllegalMove(reason error) error {
	return fmt.Errorf("%w: %w", ErrIllegalMove, reason)
}
