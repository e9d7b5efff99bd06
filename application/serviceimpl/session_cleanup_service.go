package serviceimpl

import (
	"context"
	"time"

	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/scheduler"
)

const sessionCleanupJobID = "admin_session_cleanup"

// SessionCleanupService periodically drops expired admin sessions.
type SessionCleanupService struct {
	auth      services.AdminAuthService
	scheduler scheduler.EventScheduler
	cron      string
	timeout   time.Duration
}

func NewSessionCleanupService(auth services.AdminAuthService, eventScheduler scheduler.EventScheduler, cron string) *SessionCleanupService {
	if cron == "" {
		cron = "0 * * * *" // hourly
	}
	return &SessionCleanupService{
		auth:      auth,
		scheduler: eventScheduler,
		cron:      cron,
		timeout:   time.Minute,
	}
}

func (s *SessionCleanupService) RegisterCleanupJob() error {
	return s.scheduler.AddJob(sessionCleanupJobID, s.cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.RunCleanup(ctx)
	})
}

func (s *SessionCleanupService) RunCleanup(ctx context.Context) int64 {
	n, err := s.auth.PurgeExpiredSessions(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Session cleanup failed", "error", err)
		return 0
	}
	logger.DebugContext(ctx, "Session cleanup finished", "purged", n)
	return n
}
