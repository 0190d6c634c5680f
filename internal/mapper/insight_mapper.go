package mapper

import (
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/model"
)

type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func (m *InsightMapper) ToEntity(i *model.Insight) *entity.Insight {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Insight{
		Id:          i.Id,
		UserId:      i.UserId,
		InsightType: entity.InsightType(i.InsightType),
		Title:       i.Title,
		Content:     i.Content,
		PeriodStart: i.PeriodStart,
		PeriodEnd:   i.PeriodEnd,
		Generated:   i.Generated,
		IsRead:      i.IsRead,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InsightMapper) ToModel(i *entity.Insight) *model.Insight {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Insight{
		Id:          i.Id,
		UserId:      i.UserId,
		InsightType: string(i.InsightType),
		Title:       i.Title,
		Content:     i.Content,
		PeriodStart: i.PeriodStart,
		PeriodEnd:   i.PeriodEnd,
		Generated:   i.Generated,
		IsRead:      i.IsRead,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InsightMapper) ToEntities(insights []*model.Insight) []*entity.Insight {
	entities := make([]*entity.Insight, len(insights))
	for i, ins := range insights {
		entities[i] = m.ToEntity(ins)
	}
	return entities
}
