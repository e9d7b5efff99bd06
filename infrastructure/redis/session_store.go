package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
)

const sessionKeyPrefix = "admin:session:"

// SessionStore keeps admin sessions as JSON with a TTL matching their expiry.
type SessionStore struct {
	client *Client
}

func NewSessionStore(client *Client) ports.SessionStorePort {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, session *models.AdminSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	return s.client.SetJSON(ctx, sessionKeyPrefix+session.ID, session, ttl)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*models.AdminSession, error) {
	var session models.AdminSession
	if err := s.client.GetJSON(ctx, sessionKeyPrefix+id, &session); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		return nil, ports.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id)
}

// PurgeExpired is a no-op: redis expires the keys itself.
func (s *SessionStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
