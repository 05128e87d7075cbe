package usecase

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
)

type pushChannel interface {
	Connected() bool
	Emit(event string, payload any) error
	Subscribe(owner, topic string, handler func(payload json.RawMessage)) func()
	OnConnect(owner string, fn func()) func()
	OnDisconnect(owner string, fn func()) func()
}

// Subscriptions binds push topics for one owner. A topic holds at most one handler per owner.
type Subscriptions struct {
	logger  *slog.Logger
	channel pushChannel
	owner   string

	mu     sync.Mutex
	unsubs map[string]func()
}

func NewSubscriptions(logger *slog.Logger, channel pushChannel, owner string) *Subscriptions {
	return &Subscriptions{
		logger:  logger.With("component", "subscriptions", "owner", owner),
		channel: channel,
		owner:   owner,
		unsubs:  make(map[string]func()),
	}
}

// Bind - attaches handler to topic, detaching whatever this owner had on it before.
func (that *Subscriptions) Bind(topic string, handler func(payload json.RawMessage)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if unsubscribe, ok := that.unsubs[topic]; ok {
		unsubscribe()
	}

	that.unsubs[topic] = that.channel.Subscribe(that.owner, topic, handler)
	that.logger.Debug("topic bound", "topic", topic)
}

func (that *Subscriptions) Unbind(topic string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if unsubscribe, ok := that.unsubs[topic]; ok {
		unsubscribe()
		delete(that.unsubs, topic)
	}
}

// Topics - currently bound topics, sorted.
func (that *Subscriptions) Topics() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	topics := make([]string, 0, len(that.unsubs))
	for topic := range that.unsubs {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	return topics
}

// Close - detaches every topic.
func (that *Subscriptions) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for topic, unsubscribe := range that.unsubs {
		unsubscribe()
		delete(that.unsubs, topic)
	}
}

// BindJSON - Bind with the payload decoded into T. Undecodable payloads are logged and dropped.
func BindJSON[T any](subs *Subscriptions, topic string, fn func(payload T)) {
	subs.Bind(topic, func(data json.RawMessage) {
		var payload T

		if len(data) > 0 {
			if err := json.Unmarshal(data, &payload); err != nil {
				subs.logger.Error("failed to decode push payload", "topic", topic, "error", err)
				return
			}
		}

		fn(payload)
	})
}
