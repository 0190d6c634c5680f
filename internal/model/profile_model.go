package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Timezone              string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	PreferredTone         string    `gorm:"type:varchar(50);not null;default:'warm'"`
	EnableWeeklySummaries bool      `gorm:"default:true"`
	EnableFutureLetters   bool      `gorm:"default:true"`
	CurrentStreak         int       `gorm:"default:0"`
	LongestStreak         int       `gorm:"default:0"`
	TotalEntries          int       `gorm:"default:0"`
	TotalWords            int       `gorm:"default:0"`
	LastEntryDate         *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
