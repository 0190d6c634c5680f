package mapper

import (
	"testing"
	"time"

	"echoverse-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizationMapper_EntryCountRoundTrip(t *testing.T) {
	m := NewVisualizationMapper()

	original := &entity.Visualization{
		Id:          uuid.New(),
		UserId:      uuid.New(),
		VizType:     entity.VisualizationTypeMoodBlob,
		ImagePath:   "uploads/blobs/x.png",
		Parameters:  map[string]interface{}{"radius": 250.0},
		EntryCount:  7,
		PeriodStart: time.Now().AddDate(0, 0, -7),
		PeriodEnd:   time.Now(),
		CreatedAt:   time.Now(),
	}

	restored := m.ToEntity(m.ToModel(original))

	require.NotNil(t, restored)
	assert.Equal(t, 7, restored.EntryCount)
	assert.Equal(t, original.ImagePath, restored.ImagePath)
	assert.Equal(t, 250.0, restored.Parameters["radius"])
}
