package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateVisualizationRequest struct {
	VizType     string `json:"viz_type" validate:"required,oneof=mood_blob timeline"`
	PeriodStart string `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
}

type VisualizationResponse struct {
	Id          uuid.UUID              `json:"id"`
	VizType     string                 `json:"viz_type"`
	ImageURL    string                 `json:"image_url"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	EntryCount  int                    `json:"entry_count"`
	PeriodStart time.Time              `json:"period_start"`
	PeriodEnd   time.Time              `json:"period_end"`
	CreatedAt   time.Time              `json:"created_at"`
}

type ListVisualizationsResponse struct {
	Visualizations []VisualizationResponse `json:"visualizations"`
	Total          int64                   `json:"total"`
}
