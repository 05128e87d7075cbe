package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

// Renderer draws the cube as three z-layers side by side. Rows are y, columns are x.
type Renderer struct {
	markX   *color.Color
	markO   *color.Color
	winning *color.Color
	faint   *color.Color
	notice  *color.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		markX:   color.New(color.FgRed, color.Bold),
		markO:   color.New(color.FgBlue, color.Bold),
		winning: color.New(color.FgGreen, color.Bold, color.Underline),
		faint:   color.New(color.Faint),
		notice:  color.New(color.FgYellow),
	}
}

func (that *Renderer) Render(w io.Writer, session entity.Session) {
	if !session.IsAttached() {
		fmt.Fprintln(w, "No game attached.")
		return
	}

	fmt.Fprintf(w, "\nGame %s (%s), you play %s\n", session.ID, session.Mode, that.mark(session.LocalMark))

	var header, axis strings.Builder
	for z := 0; z < entity.Size; z++ {
		fmt.Fprintf(&header, "   z=%d     ", z)
		axis.WriteString("   0 1 2   ")
	}
	fmt.Fprintln(w, that.faint.Sprint(strings.TrimRight(header.String(), " ")))
	fmt.Fprintln(w, that.faint.Sprint(strings.TrimRight(axis.String(), " ")))

	for y := 0; y < entity.Size; y++ {
		var row strings.Builder
		for z := 0; z < entity.Size; z++ {
			row.WriteString(that.faint.Sprintf("%d  ", y))
			for x := 0; x < entity.Size; x++ {
				row.WriteString(that.cell(session, entity.Coord{X: x, Y: y, Z: z}))
				row.WriteString(" ")
			}
			row.WriteString("  ")
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	fmt.Fprintln(w, that.status(session))
}

func (that *Renderer) Notice(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, that.notice.Sprintf(format, args...))
}

func (that *Renderer) cell(session entity.Session, c entity.Coord) string {
	mark := session.Board.At(c)

	switch {
	case mark == entity.EmptyCell:
		return that.faint.Sprint(".")
	case slices.Contains(session.WinLine, c):
		return that.winning.Sprint(string(mark))
	default:
		return that.mark(mark)
	}
}

func (that *Renderer) mark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.markX.Sprint(string(mark))
	case entity.PlayerO:
		return that.markO.Sprint(string(mark))
	default:
		return string(mark)
	}
}

func (that *Renderer) status(session entity.Session) string {
	switch {
	case session.Winner == entity.PlayerTie:
		return "Draw. Type 'rematch' to play again or 'quit'."
	case session.IsFinished() && session.Winner == session.LocalMark:
		return fmt.Sprintf("%s wins, that's you! Type 'rematch' to play again or 'quit'.", that.mark(session.Winner))
	case session.IsFinished():
		return fmt.Sprintf("%s wins. Type 'rematch' to play again or 'quit'.", that.mark(session.Winner))
	case session.IsWaiting():
		return fmt.Sprintf("Waiting for an opponent. Join code: %s", that.notice.Sprint(session.JoinCode))
	case session.IsMyTurn():
		return fmt.Sprintf("Your move (%s). Enter x y z:", that.mark(session.LocalMark))
	default:
		return fmt.Sprintf("Waiting for %s to move.", that.mark(session.Turn))
	}
}
