package models

import "time"

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:150;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
