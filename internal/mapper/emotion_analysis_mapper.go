package mapper

import (
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/model"
)

type EmotionAnalysisMapper struct{}

func NewEmotionAnalysisMapper() *EmotionAnalysisMapper {
	return &EmotionAnalysisMapper{}
}

func (m *EmotionAnalysisMapper) ToEntity(a *model.EmotionAnalysis) *entity.EmotionAnalysis {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.EmotionAnalysis{
		Id:                  a.Id,
		EntryId:             a.EntryId,
		Joy:                 a.Joy,
		Sadness:             a.Sadness,
		Anger:               a.Anger,
		Fear:                a.Fear,
		Surprise:            a.Surprise,
		Disgust:             a.Disgust,
		Neutral:             a.Neutral,
		Love:                a.Love,
		Anxiety:             a.Anxiety,
		Excitement:          a.Excitement,
		PrimaryEmotion:      a.PrimaryEmotion,
		PrimaryEmotionScore: a.PrimaryEmotionScore,
		SentimentPolarity:   a.SentimentPolarity,
		Source:              a.Source,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *EmotionAnalysisMapper) ToModel(a *entity.EmotionAnalysis) *model.EmotionAnalysis {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.EmotionAnalysis{
		Id:                  a.Id,
		EntryId:             a.EntryId,
		Joy:                 a.Joy,
		Sadness:             a.Sadness,
		Anger:               a.Anger,
		Fear:                a.Fear,
		Surprise:            a.Surprise,
		Disgust:             a.Disgust,
		Neutral:             a.Neutral,
		Love:                a.Love,
		Anxiety:             a.Anxiety,
		Excitement:          a.Excitement,
		PrimaryEmotion:      a.PrimaryEmotion,
		PrimaryEmotionScore: a.PrimaryEmotionScore,
		SentimentPolarity:   a.SentimentPolarity,
		Source:              a.Source,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *EmotionAnalysisMapper) ToEntities(analyses []*model.EmotionAnalysis) []*entity.EmotionAnalysis {
	entities := make([]*entity.EmotionAnalysis, len(analyses))
	for i, a := range analyses {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
