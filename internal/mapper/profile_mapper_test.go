package mapper

import (
	"testing"
	"time"

	"echoverse-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileMapper_ToEntities(t *testing.T) {
	m := NewProfileMapper()

	models := []*model.UserProfile{
		{Id: uuid.New(), UserId: uuid.New(), Timezone: "UTC", CurrentStreak: 4, CreatedAt: time.Now()},
		{Id: uuid.New(), UserId: uuid.New(), Timezone: "Asia/Kolkata", TotalEntries: 12, CreatedAt: time.Now()},
	}

	entities := m.ToEntities(models)

	require.Len(t, entities, 2)
	assert.Equal(t, models[0].Id, entities[0].Id)
	assert.Equal(t, 4, entities[0].CurrentStreak)
	assert.Equal(t, "Asia/Kolkata", entities[1].Timezone)
	assert.Equal(t, 12, entities[1].TotalEntries)
}

func TestProfileMapper_ToEntitiesEmpty(t *testing.T) {
	m := NewProfileMapper()

	assert.Empty(t, m.ToEntities(nil))
}
