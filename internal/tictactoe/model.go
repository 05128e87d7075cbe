package tictactoe

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

// Model holds the attached session. Readers always see a whole session, never a half-applied one.
// Listeners hear changes one at a time, in the order they were applied.
type Model struct {
	dispatch  sync.Mutex
	mu        sync.RWMutex
	session   entity.Session
	listeners map[int]func(entity.Session)
	nextID    int
}

func NewModel() *Model {
	return &Model{
		listeners: make(map[int]func(entity.Session)),
	}
}

// Session - returns a copy of the current session.
func (that *Model) Session() entity.Session {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.session.Clone()
}

func (that *Model) SessionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.session.ID
}

// Dispatch - reduces the action into the held session and notifies listeners on success.
// Listeners must not dispatch.
func (that *Model) Dispatch(action Action) (entity.Session, error) {
	that.dispatch.Lock()
	defer that.dispatch.Unlock()

	that.mu.Lock()

	next, err := Reduce(that.session, action)
	if err != nil {
		current := that.session.Clone()
		that.mu.Unlock()

		return current, err
	}

	that.session = next

	listeners := make([]func(entity.Session), 0, len(that.listeners))
	for _, fn := range that.listeners {
		listeners = append(listeners, fn)
	}
	that.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}

	return next.Clone(), nil
}

// OnChange - registers fn to run after every applied action. Returns the remove func.
func (that *Model) OnChange(fn func(entity.Session)) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.nextID
	that.nextID++
	that.listeners[id] = fn

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		delete(that.listeners, id)
	}
}
