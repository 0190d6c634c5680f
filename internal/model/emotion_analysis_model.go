package model

import (
	"time"

	"github.com/google/uuid"
)

type EmotionAnalysis struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Joy        float64 `gorm:"default:0"`
	Sadness    float64 `gorm:"default:0"`
	Anger      float64 `gorm:"default:0"`
	Fear       float64 `gorm:"default:0"`
	Surprise   float64 `gorm:"default:0"`
	Disgust    float64 `gorm:"default:0"`
	Neutral    float64 `gorm:"default:0"`
	Love       float64 `gorm:"default:0"`
	Anxiety    float64 `gorm:"default:0"`
	Excitement float64 `gorm:"default:0"`

	PrimaryEmotion      string  `gorm:"type:varchar(50);not null;index"`
	PrimaryEmotionScore float64 `gorm:"default:0"`
	SentimentPolarity   float64 `gorm:"default:0"`

	Source    string    `gorm:"type:varchar(20);not null;default:'lexicon'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EmotionAnalysis) TableName() string {
	return "emotion_analyses"
}
