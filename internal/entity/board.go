package entity

import (
	"encoding/json"
	"fmt"
)

const Size = 3

// Board is indexed [x][y][z], matching the wire format.
type Board [Size][Size][Size]Mark

type Coord struct {
	X int
	Y int
	Z int
}

func (that Coord) IsValid() bool {
	return inRange(that.X) && inRange(that.Y) && inRange(that.Z)
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", that.X, that.Y, that.Z)
}

func (that Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{that.X, that.Y, that.Z})
}

func (that *Coord) UnmarshalJSON(data []byte) error {
	var triple []int
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("failed to decode coordinate: %w", err)
	}

	if len(triple) != 3 {
		return fmt.Errorf("%w: want 3 components, got %d", ErrInvalidCoord, len(triple))
	}

	*that = Coord{X: triple[0], Y: triple[1], Z: triple[2]}

	return nil
}

func (that Board) At(c Coord) Mark {
	return that[c.X][c.Y][c.Z]
}

// Count - number of cells holding a player mark.
func (that Board) Count() int {
	count := 0

	for x := range that {
		for y := range that[x] {
			for _, cell := range that[x][y] {
				if cell.IsPlayer() {
					count++
				}
			}
		}
	}

	return count
}

func (that Board) IsEmpty() bool {
	return that.Count() == 0
}

func inRange(v int) bool {
	return v >= 0 && v < Size
}
