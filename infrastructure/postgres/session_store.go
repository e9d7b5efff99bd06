package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
)

// SessionStore keeps admin sessions in the admin_sessions table.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) ports.SessionStorePort {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, session *models.AdminSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionStore) Get(ctx context.Context, id string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := s.db.WithContext(ctx).Where("id = ? AND expires_at > ?", id, time.Now().UTC()).First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ports.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdminSession{}).Error
}

func (s *SessionStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.AdminSession{})
	return result.RowsAffected, result.Error
}
