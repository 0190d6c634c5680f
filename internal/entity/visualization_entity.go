package entity

import (
	"time"

	"github.com/google/uuid"
)

type VisualizationType string

const (
	VisualizationTypeMoodBlob VisualizationType = "mood_blob"
	VisualizationTypeTimeline VisualizationType = "timeline"
)

// Visualization records a rendered image and the parameters that produced it.
type Visualization struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	VizType     VisualizationType
	ImagePath   string
	Parameters  map[string]interface{}
	EntryCount  int
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}
