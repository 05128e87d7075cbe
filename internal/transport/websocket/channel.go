package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 5 * time.Second

	// Maximum message size accepted from the service.
	maxMessageSize = 64 << 10
)

type ReconnectOptions struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

// Channel is the single process-wide push connection. Handlers are keyed by (topic, owner),
// so an owner can hold at most one handler per topic.
type Channel struct {
	logger    *slog.Logger
	url       string
	header    http.Header
	dialer    *websocket.Dialer
	reconnect ReconnectOptions

	mu           sync.Mutex
	conn         *websocket.Conn
	handlers     map[string]map[string]func(json.RawMessage)
	onConnect    map[string]func()
	onDisconnect map[string]func()

	writeMu   sync.Mutex
	connected atomic.Bool
	closed    atomic.Bool
}

type Option func(*Channel)

func WithReconnect(opts ReconnectOptions) Option {
	return func(that *Channel) {
		that.reconnect = opts
	}
}

func WithHeader(header http.Header) Option {
	return func(that *Channel) {
		that.header = header
	}
}

func New(logger *slog.Logger, url string, opts ...Option) *Channel {
	channel := &Channel{
		logger: logger.With("component", "push-channel"),
		url:    url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			Proxy:            http.ProxyFromEnvironment,
		},
		reconnect: ReconnectOptions{
			Attempts: 10,
			Delay:    500 * time.Millisecond,
			MaxDelay: 10 * time.Second,
		},
		handlers:     make(map[string]map[string]func(json.RawMessage)),
		onConnect:    make(map[string]func()),
		onDisconnect: make(map[string]func()),
	}

	for _, opt := range opts {
		opt(channel)
	}

	return channel
}

// Run - keeps the connection up until ctx is done or Close is called. Blocks.
func (that *Channel) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	stop := context.AfterFunc(ctx, func() {
		that.dropConn()
	})
	defer stop()

	for {
		conn, err := that.dial(ctx)
		if err != nil {
			if that.closed.Load() || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to connect push channel: %w", err)
		}

		if that.closed.Load() {
			_ = conn.Close()
			return nil
		}

		that.setConn(conn)
		log.Info("push channel connected", "url", that.url)
		that.fire(that.onConnect)

		err = that.readLoop(conn)

		that.clearConn(conn)
		that.fire(that.onDisconnect)

		if that.closed.Load() || ctx.Err() != nil {
			log.Info("push channel stopped")
			return nil
		}

		log.Warn("push channel lost, reconnecting", "error", err)
	}
}

func (that *Channel) dial(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn

	err := retry.Do(
		func() error {
			if that.closed.Load() {
				return retry.Unrecoverable(apperror.ErrChannelClosed)
			}

			c, _, err := that.dialer.DialContext(ctx, that.url, that.header)
			if err != nil {
				return fmt.Errorf("failed to dial %s: %w", that.url, err)
			}

			conn = c

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(that.reconnect.Attempts),
		retry.Delay(that.reconnect.Delay),
		retry.MaxDelay(that.reconnect.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			that.logger.Warn("push channel dial failed", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

func (that *Channel) readLoop(conn *websocket.Conn) error {
	conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			that.logger.Error("failed to unmarshal push message", "error", err)
			continue
		}

		that.deliver(msg)
	}
}

// deliver - runs the topic's handlers on the read goroutine, so events apply in arrival order.
func (that *Channel) deliver(msg Message) {
	that.mu.Lock()
	subs := make([]func(json.RawMessage), 0, len(that.handlers[msg.Event]))
	for _, handler := range that.handlers[msg.Event] {
		subs = append(subs, handler)
	}
	that.mu.Unlock()

	if len(subs) == 0 {
		that.logger.Debug("push event without handler", "event", msg.Event)
		return
	}

	for _, handler := range subs {
		handler(msg.Data)
	}
}

// Connected - whether a connection is currently up.
func (that *Channel) Connected() bool {
	return that.connected.Load()
}

// Emit - writes one event. Bounded by writeWait; fails fast when not connected.
func (that *Channel) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	frame, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", event, err)
	}

	that.mu.Lock()
	conn := that.conn
	that.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("failed to emit %s: %w", event, apperror.ErrChannelClosed)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("failed to emit %s: %w", event, err)
	}

	return nil
}

// Subscribe - installs handler for (owner, topic), replacing any previous one.
func (that *Channel) Subscribe(owner, topic string, handler func(payload json.RawMessage)) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.handlers[topic] == nil {
		that.handlers[topic] = make(map[string]func(json.RawMessage))
	}
	that.handlers[topic][owner] = handler

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if subs, ok := that.handlers[topic]; ok {
			delete(subs, owner)
			if len(subs) == 0 {
				delete(that.handlers, topic)
			}
		}
	}
}

// OnConnect - fn runs after every successful (re)connect.
func (that *Channel) OnConnect(owner string, fn func()) func() {
	return that.listen(that.onConnect, owner, fn)
}

// OnDisconnect - fn runs every time the connection goes away.
func (that *Channel) OnDisconnect(owner string, fn func()) func() {
	return that.listen(that.onDisconnect, owner, fn)
}

// Close - stops Run and closes the connection with a normal closure frame.
func (that *Channel) Close() error {
	if !that.closed.CompareAndSwap(false, true) {
		return nil
	}

	that.mu.Lock()
	conn := that.conn
	that.mu.Unlock()

	if conn == nil {
		return nil
	}

	that.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	writeErr := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	that.writeMu.Unlock()

	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("failed to close push channel: %w", err)
	}

	if writeErr != nil && !errors.Is(writeErr, websocket.ErrCloseSent) {
		that.logger.Debug("close frame not sent", "error", writeErr)
	}

	return nil
}

func (that *Channel) listen(listeners map[string]func(), owner string, fn func()) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	listeners[owner] = fn

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		delete(listeners, owner)
	}
}

func (that *Channel) fire(listeners map[string]func()) {
	that.mu.Lock()
	fns := make([]func(), 0, len(listeners))
	for _, fn := range listeners {
		fns = append(fns, fn)
	}
	that.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (that *Channel) setConn(conn *websocket.Conn) {
	that.mu.Lock()
	that.conn = conn
	that.mu.Unlock()

	that.connected.Store(true)
}

func (that *Channel) clearConn(conn *websocket.Conn) {
	that.connected.Store(false)

	that.mu.Lock()
	if that.conn == conn {
		that.conn = nil
	}
	that.mu.Unlock()

	_ = conn.Close()
}

func (that *Channel) dropConn() {
	that.mu.Lock()
	conn := that.conn
	that.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}
