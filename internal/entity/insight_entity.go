package entity

import (
	"time"

	"github.com/google/uuid"
)

type InsightType string

const (
	InsightTypeWeeklySummary   InsightType = "weekly_summary"
	InsightTypeFutureLetter    InsightType = "future_letter"
	InsightTypePatternAnalysis InsightType = "pattern_analysis"
	InsightTypeRecommendation  InsightType = "recommendation"
)

// ValidInsightType reports whether t names a supported insight type.
func ValidInsightType(t InsightType) bool {
	switch t {
	case InsightTypeWeeklySummary, InsightTypeFutureLetter,
		InsightTypePatternAnalysis, InsightTypeRecommendation:
		return true
	}
	return false
}

// Insight is one AI-written reflection over a period of entries.
// Generated is false when the content came from the template fallback
// instead of the model.
type Insight struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	InsightType InsightType
	Title       string
	Content     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Generated   bool
	IsRead      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
