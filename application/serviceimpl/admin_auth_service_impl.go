package serviceimpl

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

const sessionIDLength = 48

type AdminAuthServiceImpl struct {
	adminRepo repositories.AdminUserRepository
	sessions  ports.SessionStorePort
	secret    string
	maxAge    time.Duration
	now       func() time.Time
}

func NewAdminAuthService(adminRepo repositories.AdminUserRepository, sessions ports.SessionStorePort, secret string, maxAge time.Duration) services.AdminAuthService {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &AdminAuthServiceImpl{
		adminRepo: adminRepo,
		sessions:  sessions,
		secret:    secret,
		maxAge:    maxAge,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminAuthServiceImpl) Login(ctx context.Context, username, password string) (string, *models.AdminUser, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Admin login for unknown user", "username", username)
			return "", nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Failed to look up admin", "username", username, "error", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Admin login with wrong password", "username", username)
		return "", nil, services.ErrInvalidCredentials
	}
	if !admin.IsActive {
		logger.WarnContext(ctx, "Inactive admin tried to log in", "username", username)
		return "", nil, services.ErrAdminInactive
	}

	sessionID, err := utils.GenerateRandomString(sessionIDLength)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate admin session id", "admin_id", admin.ID, "error", err)
		return "", nil, err
	}

	now := s.now()
	session := &models.AdminSession{
		ID:        sessionID,
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: now.Add(s.maxAge),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		logger.ErrorContext(ctx, "Failed to create admin session", "admin_id", admin.ID, "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateSessionToken(session.ID, admin.ID, admin.Username, session.ExpiresAt, s.secret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign session token", "admin_id", admin.ID, "error", err)
		_ = s.sessions.Delete(ctx, session.ID)
		return "", nil, err
	}

	logger.InfoContext(ctx, "Admin logged in", "admin_id", admin.ID, "username", admin.Username)
	return token, admin, nil
}

// Logout is idempotent; an unreadable token has nothing to revoke.
func (s *AdminAuthServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseSessionToken(token, s.secret)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete admin session", "admin_id", claims.AdminID, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Admin logged out", "admin_id", claims.AdminID, "username", claims.Username)
	return nil
}

func (s *AdminAuthServiceImpl) Authenticate(ctx context.Context, token string) (*utils.AdminContext, error) {
	session, _, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &utils.AdminContext{
		SessionID: session.ID,
		AdminID:   session.AdminID,
		Username:  session.Username,
	}, nil
}

func (s *AdminAuthServiceImpl) CurrentAdmin(ctx context.Context, token string) (*models.AdminUser, error) {
	_, admin, err := s.authenticate(ctx, token)
	return admin, err
}

// authenticate resolves a token to its live session and the admin behind it.
// Sessions of admins that were deactivated or removed are revoked on sight.
func (s *AdminAuthServiceImpl) authenticate(ctx context.Context, token string) (*models.AdminSession, *models.AdminUser, error) {
	claims, err := utils.ParseSessionToken(token, s.secret)
	if err != nil {
		return nil, nil, services.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if !errors.Is(err, ports.ErrSessionNotFound) {
			logger.ErrorContext(ctx, "Failed to load admin session", "error", err)
		}
		return nil, nil, services.ErrUnauthorized
	}
	if session.IsExpired(s.now()) || session.AdminID != claims.AdminID {
		return nil, nil, services.ErrUnauthorized
	}

	admin, err := s.adminRepo.GetByID(ctx, session.AdminID)
	switch {
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		logger.ErrorContext(ctx, "Failed to load admin for session", "admin_id", session.AdminID, "error", err)
		return nil, nil, services.ErrUnauthorized
	case err != nil || !admin.IsActive:
		logger.WarnContext(ctx, "Revoking session of inactive admin", "admin_id", session.AdminID)
		if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			logger.ErrorContext(ctx, "Failed to revoke admin session", "admin_id", session.AdminID, "error", delErr)
		}
		return nil, nil, services.ErrUnauthorized
	}
	return session, admin, nil
}

func (s *AdminAuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (*models.AdminUser, bool, error) {
	existing, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash admin password", "error", err)
		return nil, false, err
	}

	admin := &models.AdminUser{
		Username: username,
		Password: string(hashed),
		IsActive: true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		logger.ErrorContext(ctx, "Failed to create admin", "username", username, "error", err)
		return nil, false, err
	}

	logger.InfoContext(ctx, "Admin account created", "admin_id", admin.ID, "username", username)
	return admin, true, nil
}

func (s *AdminAuthServiceImpl) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.PurgeExpired(ctx, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to purge admin sessions", "error", err)
		return 0, err
	}
	if n > 0 {
		logger.InfoContext(ctx, "Expired admin sessions purged", "count", n)
	}
	return n, nil
}
