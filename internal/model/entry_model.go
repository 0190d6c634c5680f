package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Entry struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(200);not null"`
	Content    string         `gorm:"type:text;not null"`
	WordCount  int            `gorm:"default:0"`
	IsAnalyzed bool           `gorm:"default:false;index"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Entry) TableName() string {
	return "entries"
}
