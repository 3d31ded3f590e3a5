package users

import "time"

type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Token     string `gorm:"uniqueIndex"`
	Type      string `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
