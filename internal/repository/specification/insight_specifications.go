package specification

import (
	"gorm.io/gorm"
)

type ByInsightType struct {
	InsightType string
}

func (s ByInsightType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("insight_type = ?", s.InsightType)
}

// UnreadFirst orders insights so unread ones surface before read ones,
// newest first within each group.
type UnreadFirst struct{}

func (s UnreadFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_read ASC, created_at DESC")
}

type ByVizType struct {
	VizType string
}

func (s ByVizType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("viz_type = ?", s.VizType)
}
