package services

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/pkg/utils"
)

// AdminAuthService issues and checks admin sessions. The token returned by Login is
// what the handler puts in the session cookie.
type AdminAuthService interface {
	Login(ctx context.Context, username, password string) (token string, admin *models.AdminUser, err error)
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a cookie token to the admin behind a live session.
	Authenticate(ctx context.Context, token string) (*utils.AdminContext, error)

	CurrentAdmin(ctx context.Context, token string) (*models.AdminUser, error)

	// EnsureAdmin creates the admin account if the username is not taken yet.
	EnsureAdmin(ctx context.Context, username, password string) (*models.AdminUser, bool, error)

	// PurgeExpiredSessions removes stale session records.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
