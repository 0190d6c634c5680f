package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Visualization struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index:idx_visualizations_user_created,priority:1"`
	VizType     string         `gorm:"type:varchar(50);not null;index"`
	ImagePath   string         `gorm:"type:text;not null"`
	Parameters  datatypes.JSON `gorm:"type:jsonb"`
	EntryCount  int            `gorm:"not null;default:0"`
	PeriodStart time.Time      `gorm:"not null"`
	PeriodEnd   time.Time      `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index:idx_visualizations_user_created,priority:2"`
}

func (Visualization) TableName() string {
	return "visualizations"
}
