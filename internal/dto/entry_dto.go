package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEntryRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type CreateEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateEntryRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type UpdateEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

// EmotionAnalysisDTO is the classification block embedded in entry responses.
type EmotionAnalysisDTO struct {
	Joy                 float64    `json:"joy"`
	Sadness             float64    `json:"sadness"`
	Anger               float64    `json:"anger"`
	Fear                float64    `json:"fear"`
	Surprise            float64    `json:"surprise"`
	Disgust             float64    `json:"disgust"`
	Neutral             float64    `json:"neutral"`
	Love                float64    `json:"love"`
	Anxiety             float64    `json:"anxiety"`
	Excitement          float64    `json:"excitement"`
	PrimaryEmotion      string     `json:"primary_emotion"`
	PrimaryEmotionScore float64    `json:"primary_emotion_score"`
	SentimentPolarity   float64    `json:"sentiment_polarity"`
	Source              string     `json:"source"`
	AnalyzedAt          time.Time  `json:"analyzed_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

type ShowEntryResponse struct {
	Id         uuid.UUID           `json:"id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	WordCount  int                 `json:"word_count"`
	IsAnalyzed bool                `json:"is_analyzed"`
	Analysis   *EmotionAnalysisDTO `json:"analysis,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  *time.Time          `json:"updated_at,omitempty"`
}

type EntryListItem struct {
	Id             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Preview        string     `json:"preview"`
	WordCount      int        `json:"word_count"`
	IsAnalyzed     bool       `json:"is_analyzed"`
	PrimaryEmotion string     `json:"primary_emotion,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type ListEntriesRequest struct {
	Page           int    `query:"page"`
	Limit          int    `query:"limit" validate:"omitempty,max=100"`
	StartDate      string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	PrimaryEmotion string `query:"emotion" validate:"omitempty,oneof=joy sadness anger fear surprise disgust neutral love anxiety excitement"`
}

type ListEntriesResponse struct {
	Entries []EntryListItem `json:"entries"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Total   int64           `json:"total"`
}

type SearchEntriesRequest struct {
	Query string `json:"query" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"omitempty,max=50"`
}

type SearchEntryResult struct {
	Id             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Preview        string     `json:"preview"`
	PrimaryEmotion string     `json:"primary_emotion,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	RelevanceScore float64    `json:"relevance_score"`
}

type ReanalyzeEntryResponse struct {
	Id     uuid.UUID `json:"id"`
	Queued bool      `json:"queued"`
}
