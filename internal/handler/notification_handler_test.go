package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"echoverse-be/internal/model"
	"echoverse-be/internal/repository"
	"echoverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationRepo struct {
	repository.NotificationRepository
	limit  int
	offset int
}

func (r *stubNotificationRepo) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	r.limit, r.offset = limit, offset
	return []model.Notification{}, 0, nil
}

func newNotificationTestApp(repo repository.NotificationRepository) (*fiber.App, *NotificationHandler) {
	svc := service.NewNotificationService(repo, nil, nil, nil)
	h := NewNotificationHandler(svc, nil, nil, nil)

	app := fiber.New()
	app.Get("/notifications", func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		return h.GetNotifications(c)
	})
	return app, h
}

func TestGetNotifications_ZeroLimitFallsBackToDefault(t *testing.T) {
	repo := &stubNotificationRepo{}
	app, _ := newNotificationTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications?limit=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, 20, repo.limit)
}

func TestGetNotifications_LimitCappedAndNegativeOffsetReset(t *testing.T) {
	repo := &stubNotificationRepo{}
	app, _ := newNotificationTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications?limit=500&offset=-40", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 100, repo.limit)
	assert.Equal(t, 0, repo.offset)
}
