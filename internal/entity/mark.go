package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type (
	Mark   string
	Mode   string
	Status string
)

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "draw"
	EmptyCell Mark = ""
)

const (
	ModeSingle Mode = "single"
	ModeDouble Mode = "double"
)

const (
	StatusNone     Status = ""
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

var (
	ErrUnknownMark   = errors.New("unknown mark")
	ErrUnknownStatus = errors.New("unknown game status")
)

// ParseMark - normalizes the cell/winner/turn spellings the game service uses.
func ParseMark(raw string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return EmptyCell, nil
	case "x":
		return PlayerX, nil
	case "o":
		return PlayerO, nil
	case "draw", "tie", "-":
		return PlayerTie, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrUnknownMark, raw)
	}
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = EmptyCell
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode mark: %w", err)
	}

	mark, err := ParseMark(raw)
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// IsPlayer - true for X and O, false for empty and the draw sentinel.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// ParseStatus - maps the service's status strings onto the three client states.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return StatusNone, nil
	case "waiting", "waiting-for-opponent":
		return StatusWaiting, nil
	case "active", "ongoing":
		return StatusActive, nil
	case "finished", "ended", "over":
		return StatusFinished, nil
	default:
		return StatusNone, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

func (that *Status) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = StatusNone
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode status: %w", err)
	}

	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*that = status

	return nil
}

func (that Mode) IsValid() bool {
	return that == ModeSingle || that == ModeDouble
}
