package mapper

import (
	"encoding/json"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/model"

	"gorm.io/datatypes"
)

type VisualizationMapper struct{}

func NewVisualizationMapper() *VisualizationMapper {
	return &VisualizationMapper{}
}

func (m *VisualizationMapper) ToEntity(v *model.Visualization) *entity.Visualization {
	if v == nil {
		return nil
	}

	var params map[string]interface{}
	if len(v.Parameters) > 0 {
		_ = json.Unmarshal(v.Parameters, &params)
	}

	return &entity.Visualization{
		Id:          v.Id,
		UserId:      v.UserId,
		VizType:     entity.VisualizationType(v.VizType),
		ImagePath:   v.ImagePath,
		Parameters:  params,
		EntryCount:  v.EntryCount,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VisualizationMapper) ToModel(v *entity.Visualization) *model.Visualization {
	if v == nil {
		return nil
	}

	var params datatypes.JSON
	if v.Parameters != nil {
		raw, err := json.Marshal(v.Parameters)
		if err == nil {
			params = datatypes.JSON(raw)
		}
	}

	return &model.Visualization{
		Id:          v.Id,
		UserId:      v.UserId,
		VizType:     string(v.VizType),
		ImagePath:   v.ImagePath,
		Parameters:  params,
		EntryCount:  v.EntryCount,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VisualizationMapper) ToEntities(visualizations []*model.Visualization) []*entity.Visualization {
	entities := make([]*entity.Visualization, len(visualizations))
	for i, v := range visualizations {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
