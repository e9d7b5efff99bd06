package models

import "time"

type AdminUser struct {
	ID        uint    `gorm:"primaryKey"`
	Username  string  `gorm:"size:100;uniqueIndex;not null"`
	Password  string  `gorm:"size:255;not null"` // bcrypt hash
	Email     *string `gorm:"size:255;uniqueIndex"`
	FirstName string  `gorm:"size:100"`
	LastName  string  `gorm:"size:100"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminSession is the server-side record behind an admin cookie.
// Deleting it revokes the cookie even before the token expires.
type AdminSession struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AdminID   uint      `gorm:"not null;index"`
	Username  string    `gorm:"size:100;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

func (s *AdminSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
