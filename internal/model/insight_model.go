package model

import (
	"time"

	"github.com/google/uuid"
)

type Insight struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index:idx_insights_user_created,priority:1"`
	InsightType string    `gorm:"type:varchar(50);not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Content     string    `gorm:"type:text;not null"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
	Generated   bool      `gorm:"default:false"`
	IsRead      bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_insights_user_created,priority:2"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Insight) TableName() string {
	return "insights"
}
