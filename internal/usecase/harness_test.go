package usecase

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockedUseCase "github.com/rocketscienceinc/tictactoe3d-client/mocks/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// channelHarness - a mocked push channel that keeps the handlers it was given so tests can push.
type channelHarness struct {
	*mockedUseCase.MockpushChannel

	connected atomic.Bool

	mu           sync.Mutex
	handlers     map[string]func(json.RawMessage)
	onConnect    func()
	onDisconnect func()
}

func newChannelHarness(t *testing.T, connected bool) *channelHarness {
	t.Helper()

	harness := &channelHarness{
		MockpushChannel: mockedUseCase.NewMockpushChannel(t),
		handlers:        make(map[string]func(json.RawMessage)),
	}
	harness.connected.Store(connected)

	harness.EXPECT().Connected().RunAndReturn(harness.connected.Load).Maybe()

	harness.EXPECT().
		Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, topic string, handler func(json.RawMessage)) func() {
			harness.mu.Lock()
			defer harness.mu.Unlock()

			harness.handlers[topic] = handler

			return func() {
				harness.mu.Lock()
				defer harness.mu.Unlock()

				delete(harness.handlers, topic)
			}
		}).
		Maybe()

	harness.EXPECT().
		OnConnect(mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, fn func()) func() {
			harness.mu.Lock()
			defer harness.mu.Unlock()

			harness.onConnect = fn

			return func() {}
		}).
		Maybe()

	harness.EXPECT().
		OnDisconnect(mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, fn func()) func() {
			harness.mu.Lock()
			defer harness.mu.Unlock()

			harness.onDisconnect = fn

			return func() {}
		}).
		Maybe()

	return harness
}

func (that *channelHarness) push(t *testing.T, topic string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	that.mu.Lock()
	handler := that.handlers[topic]
	that.mu.Unlock()

	require.NotNil(t, handler, "no handler bound for %s", topic)
	handler(data)
}

func (that *channelHarness) bound(topic string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.handlers[topic]

	return ok
}

func (that *channelHarness) connect() {
	that.connected.Store(true)

	that.mu.Lock()
	fn := that.onConnect
	that.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (that *channelHarness) disconnect() {
	that.connected.Store(false)

	that.mu.Lock()
	fn := that.onDisconnect
	that.mu.Unlock()

	if fn != nil {
		fn()
	}
}
