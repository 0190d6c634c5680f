package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateInsightRequest struct {
	InsightType string `json:"insight_type" validate:"required,oneof=weekly_summary future_letter pattern_analysis recommendation"`
	PeriodStart string `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
	MonthsAhead int    `json:"months_ahead" validate:"omitempty,min=1,max=24"`
}

type InsightResponse struct {
	Id          uuid.UUID `json:"id"`
	InsightType string    `json:"insight_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Generated   bool      `json:"generated"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type InsightListItem struct {
	Id          uuid.UUID `json:"id"`
	InsightType string    `json:"insight_type"`
	Title       string    `json:"title"`
	Preview     string    `json:"preview"`
	Generated   bool      `json:"generated"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListInsightsRequest struct {
	Page        int    `query:"page"`
	Limit       int    `query:"limit" validate:"omitempty,max=100"`
	InsightType string `query:"type" validate:"omitempty,oneof=weekly_summary future_letter pattern_analysis recommendation"`
}

type ListInsightsResponse struct {
	Insights []InsightListItem `json:"insights"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}
