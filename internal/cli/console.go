package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/usecase"
)

var errBadCell = errors.New("expected three numbers from 0 to 2, like: 1 1 1")

const helpText = `Commands:
  x y z      place your mark, e.g. "1 0 2"
  rematch    start a new game in the same mode once this one is over
  show       draw the board again
  quit       leave the game`

// Console is the interactive terminal front end. It is also the manager's Notifier.
type Console struct {
	in       io.Reader
	out      io.Writer
	renderer *Renderer

	changed chan struct{}
	left    chan struct{}

	last entity.Session
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       in,
		out:      out,
		renderer: NewRenderer(),
		changed:  make(chan struct{}, 1),
		left:     make(chan struct{}, 1),
	}
}

// SessionChanged - coalesces; the play loop renders whatever is current when it wakes.
func (that *Console) SessionChanged(entity.Session) {
	select {
	case that.changed <- struct{}{}:
	default:
	}
}

func (that *Console) OpponentLeft() {
	select {
	case that.left <- struct{}{}:
	default:
	}
}

// Play - reads commands until quit, end of input, ctx ending or the opponent leaving.
func (that *Console) Play(ctx context.Context, manager *usecase.GameManager) error {
	lines := readLines(ctx, that.in)

	that.render(manager.Session(), true)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-that.left:
			that.renderer.Notice(that.out, "Your opponent left the game.")
			return nil

		case <-that.changed:
			that.render(manager.Session(), false)

		case line, ok := <-lines:
			if !ok {
				manager.Leave()
				return nil
			}

			if that.execute(ctx, manager, line) {
				return nil
			}
		}
	}
}

// execute - runs one command line. Returns true when the player quit.
func (that *Console) execute(ctx context.Context, manager *usecase.GameManager, line string) bool {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "q", "quit", "exit", "leave":
		manager.Leave()
		that.renderer.Notice(that.out, "Left the game.")

		return true

	case "h", "help", "?":
		fmt.Fprintln(that.out, helpText)

	case "s", "show":
		that.render(manager.Session(), true)

	case "r", "rematch":
		if err := manager.Rematch(ctx); err != nil {
			that.report(err)
			return false
		}
		that.render(manager.Session(), false)

	default:
		if fields[0] == "m" || fields[0] == "move" {
			fields = fields[1:]
		}

		cell, err := parseCell(fields)
		if err != nil {
			that.report(err)
			return false
		}

		if err = manager.SubmitMove(ctx, cell); err != nil {
			that.report(err)
		}
		that.render(manager.Session(), false)
	}

	return false
}

func (that *Console) report(err error) {
	switch {
	case errors.Is(err, apperror.ErrIllegalMove):
		that.renderer.Notice(that.out, "Not allowed: %s", strings.TrimPrefix(err.Error(), apperror.ErrIllegalMove.Error()+": "))
	case errors.Is(err, apperror.ErrRequestFailure):
		that.renderer.Notice(that.out, "The game service did not accept that: %v", err)
	default:
		that.renderer.Notice(that.out, "%v", err)
	}
}

func (that *Console) render(session entity.Session, force bool) {
	if !force && sameView(that.last, session) {
		return
	}

	that.last = session
	that.renderer.Render(that.out, session)
}

func sameView(a, b entity.Session) bool {
	return a.ID == b.ID &&
		a.Board == b.Board &&
		a.Turn == b.Turn &&
		a.Winner == b.Winner &&
		a.Status == b.Status &&
		a.JoinCode == b.JoinCode
}

func parseCell(fields []string) (entity.Coord, error) {
	if len(fields) != entity.Size {
		return entity.Coord{}, errBadCell
	}

	var values [entity.Size]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return entity.Coord{}, errBadCell
		}
		values[i] = v
	}

	cell := entity.Coord{X: values[0], Y: values[1], Z: values[2]}
	if !cell.IsValid() {
		return entity.Coord{}, errBadCell
	}

	return cell, nil
}

func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
