package mapper

import (
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserProfile{
		Id:                    p.Id,
		UserId:                p.UserId,
		Timezone:              p.Timezone,
		PreferredTone:         p.PreferredTone,
		EnableWeeklySummaries: p.EnableWeeklySummaries,
		EnableFutureLetters:   p.EnableFutureLetters,
		CurrentStreak:         p.CurrentStreak,
		LongestStreak:         p.LongestStreak,
		TotalEntries:          p.TotalEntries,
		TotalWords:            p.TotalWords,
		LastEntryDate:         p.LastEntryDate,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.UserProfile) []*entity.UserProfile {
	entities := make([]*entity.UserProfile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProfile{
		Id:                    p.Id,
		UserId:                p.UserId,
		Timezone:              p.Timezone,
		PreferredTone:         p.PreferredTone,
		EnableWeeklySummaries: p.EnableWeeklySummaries,
		EnableFutureLetters:   p.EnableFutureLetters,
		CurrentStreak:         p.CurrentStreak,
		LongestStreak:         p.LongestStreak,
		TotalEntries:          p.TotalEntries,
		TotalWords:            p.TotalWords,
		LastEntryDate:         p.LastEntryDate,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}
