package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps the last attached session of a client so it can be resumed.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository - ttl of zero keeps records until they are deleted.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (that *SessionRepository) Save(ctx context.Context, clientID string, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Set(ctx, sessionKey(clientID), sessionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *SessionRepository) Get(ctx context.Context, clientID string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKey(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNoSavedSession
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session entity.Session
	if err = json.Unmarshal([]byte(response), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (that *SessionRepository) Delete(ctx context.Context, clientID string) error {
	if err := that.client.Del(ctx, sessionKey(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func sessionKey(clientID string) string {
	return sessionKeyPrefix + clientID
}
