package service

import (
	"context"
	"encoding/json"
	"testing"

	"echoverse-be/internal/model"
	"echoverse-be/internal/repository"
	"echoverse-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markReadRepo struct {
	repository.NotificationRepository
	userID uuid.UUID
	id     uuid.UUID
}

func (r *markReadRepo) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	r.userID = userID
	r.id = notificationID
	return nil
}

func TestMarkAsRead_ScopedToOwner(t *testing.T) {
	repo := &markReadRepo{}
	s := NewNotificationService(repo, nil, nil, nil)

	userID, id := uuid.New(), uuid.New()
	require.NoError(t, s.MarkAsRead(context.Background(), userID, id))

	assert.Equal(t, userID, repo.userID)
	assert.Equal(t, id, repo.id)
}

func TestBuildNotification_TemplateSubstitution(t *testing.T) {
	s := &NotificationService{}
	userID := uuid.New()

	config := &model.NotificationType{
		Code:        "ENTRY_ANALYZED",
		DisplayName: "Entry Analyzed",
		Template:    "Analysis finished for \"{title}\": mostly {primary_emotion}",
	}
	event := events.NewBaseEvent("ENTRY_ANALYZED", map[string]interface{}{
		"title":           "Monday morning",
		"primary_emotion": "joy",
	})

	notif := s.buildNotification(userID, config, event)

	assert.Equal(t, userID, notif.UserID)
	assert.Equal(t, "ENTRY_ANALYZED", notif.TypeCode)
	assert.Equal(t, "Entry Analyzed", notif.Title)
	assert.Equal(t, `Analysis finished for "Monday morning": mostly joy`, notif.Message)
	assert.False(t, notif.IsRead)
}

func TestBuildNotification_UnknownPlaceholderLeftIntact(t *testing.T) {
	s := &NotificationService{}

	config := &model.NotificationType{
		Code:     "INSIGHT_READY",
		Template: "Your {insight_type} insight is ready",
	}
	event := events.NewBaseEvent("INSIGHT_READY", map[string]interface{}{})

	notif := s.buildNotification(uuid.New(), config, event)

	assert.Equal(t, "Your {insight_type} insight is ready", notif.Message)
}

func TestBuildNotification_ActionURLMetadata(t *testing.T) {
	s := &NotificationService{}
	entryID := uuid.New()

	config := &model.NotificationType{
		Code:     "ENTRY_CREATED",
		Template: "Saved {title}",
	}
	event := events.NewBaseEvent("ENTRY_CREATED", map[string]interface{}{
		"title":       "Night thoughts",
		"entity_type": "entry",
		"entity_id":   entryID.String(),
	})

	notif := s.buildNotification(uuid.New(), config, event)

	require.NotNil(t, notif.EntityID)
	assert.Equal(t, entryID, *notif.EntityID)
	assert.Equal(t, "entry", notif.EntityType)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(notif.Metadata, &meta))
	assert.Equal(t, "/entrys/"+entryID.String(), meta["action_url"])
}

func TestBuildNotification_ActorID(t *testing.T) {
	s := &NotificationService{}
	actorID := uuid.New()

	config := &model.NotificationType{Code: "USER_REGISTERED", Template: "hi"}
	event := events.NewBaseEvent("USER_REGISTERED", map[string]interface{}{
		"actor_id": actorID.String(),
	})

	notif := s.buildNotification(uuid.New(), config, event)

	require.NotNil(t, notif.ActorID)
	assert.Equal(t, actorID, *notif.ActorID)
}
