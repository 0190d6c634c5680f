package entity

import (
	"time"

	"github.com/google/uuid"
)

// Analysis sources.
const (
	AnalysisSourceRemote  = "remote"
	AnalysisSourceLexicon = "lexicon"
)

// EmotionAnalysis is the per-entry classification result. One analysis
// exists per entry and is replaced whenever the entry content changes.
type EmotionAnalysis struct {
	Id      uuid.UUID
	EntryId uuid.UUID

	Joy        float64
	Sadness    float64
	Anger      float64
	Fear       float64
	Surprise   float64
	Disgust    float64
	Neutral    float64
	Love       float64
	Anxiety    float64
	Excitement float64

	PrimaryEmotion      string
	PrimaryEmotionScore float64
	SentimentPolarity   float64

	Source    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ScoreMap exposes the per-emotion scores keyed by emotion name.
func (a *EmotionAnalysis) ScoreMap() map[string]float64 {
	return map[string]float64{
		"joy":        a.Joy,
		"sadness":    a.Sadness,
		"anger":      a.Anger,
		"fear":       a.Fear,
		"surprise":   a.Surprise,
		"disgust":    a.Disgust,
		"neutral":    a.Neutral,
		"love":       a.Love,
		"anxiety":    a.Anxiety,
		"excitement": a.Excitement,
	}
}
