package ports

import (
	"context"
	"errors"
	"time"

	"github.com/DsDac0/Website/domain/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStorePort keeps admin sessions server-side (redis or the database).
type SessionStorePort interface {
	Create(ctx context.Context, session *models.AdminSession) error
	// Get returns ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*models.AdminSession, error)
	Delete(ctx context.Context, id string) error
	// PurgeExpired removes sessions that expired before now; stores with native TTL may return 0.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
