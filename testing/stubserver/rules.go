package stubserver

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

var errInvalidMove = errors.New("invalid move")

var lines = winLines()

// winLines - every straight line of three cells in the cube. Each direction is taken once,
// with its first non-zero component positive.
func winLines() [][3]entity.Coord {
	var result [][3]entity.Coord

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if !canonical(dx, dy, dz) {
					continue
				}

				for x := 0; x < entity.Size; x++ {
					for y := 0; y < entity.Size; y++ {
						for z := 0; z < entity.Size; z++ {
							end := entity.Coord{X: x + 2*dx, Y: y + 2*dy, Z: z + 2*dz}
							if !end.IsValid() {
								continue
							}

							result = append(result, [3]entity.Coord{
								{X: x, Y: y, Z: z},
								{X: x + dx, Y: y + dy, Z: z + dz},
								end,
							})
						}
					}
				}
			}
		}
	}

	return result
}

func canonical(dx, dy, dz int) bool {
	for _, d := range []int{dx, dy, dz} {
		if d != 0 {
			return d > 0
		}
	}

	return false
}

func (that *game) apply(cell entity.Coord) error {
	if that.winner != entity.EmptyCell || that.status != entity.StatusActive {
		return errInvalidMove
	}

	if !cell.IsValid() || that.board.At(cell) != entity.EmptyCell {
		return errInvalidMove
	}

	that.board[cell.X][cell.Y][cell.Z] = that.turn

	if line, ok := that.findLine(that.turn); ok {
		that.winner = that.turn
		that.winLine = line[:]
		that.turn = entity.EmptyCell
		that.status = entity.StatusFinished

		return nil
	}

	if that.board.Count() == entity.Size*entity.Size*entity.Size {
		that.winner = entity.PlayerTie
		that.turn = entity.EmptyCell
		that.status = entity.StatusFinished

		return nil
	}

	that.turn = that.turn.Opponent()

	return nil
}

func (that *game) findLine(mark entity.Mark) ([3]entity.Coord, bool) {
	for _, line := range lines {
		if that.board.At(line[0]) == mark && that.board.At(line[1]) == mark && that.board.At(line[2]) == mark {
			return line, true
		}
	}

	return [3]entity.Coord{}, false
}

// robotMove - first free cell in x, y, z order.
func (that *game) robotMove() {
	for x := 0; x < entity.Size; x++ {
		for y := 0; y < entity.Size; y++ {
			for z := 0; z < entity.Size; z++ {
				cell := entity.Coord{X: x, Y: y, Z: z}
				if that.board.At(cell) == entity.EmptyCell {
					_ = that.apply(cell)
					return
				}
			}
		}
	}
}
