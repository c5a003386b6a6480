package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/usercontext"
)

type fakeNotificationRepo struct {
	repository.NotificationRepository

	owners   map[uint]string
	readIDs  []uint
	readUIDs []string
}

func (f *fakeNotificationRepo) ListByUserUID(uid string, offset, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for id, owner := range f.owners {
		if owner == uid {
			out = append(out, models.Notification{ID: id, UserUID: owner})
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id uint, uid string) error {
	f.readIDs = append(f.readIDs, id)
	f.readUIDs = append(f.readUIDs, uid)
	if f.owners[id] != uid {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func newNotificationTestApp(repo *fakeNotificationRepo, uid string) *fiber.App {
	InitializeNotificationController(repo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			UserID:     1,
			UserUID:    uid,
			IsLoggedIn: true,
		})
		return c.Next()
	})
	app.Get("/api/v1/notifications", HandleNotificationsList)
	app.Post("/api/v1/notifications/:id/read", HandleNotificationMarkRead)
	return app
}

func TestHandleNotificationMarkReadOwn(t *testing.T) {
	repo := &fakeNotificationRepo{owners: map[uint]string{7: "uid-a"}}
	app := newNotificationTestApp(repo, "uid-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/notifications/7/read", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, repo.readIDs, 1)
	assert.Equal(t, uint(7), repo.readIDs[0])
	assert.Equal(t, "uid-a", repo.readUIDs[0])
}

func TestHandleNotificationMarkReadForeignIsNotFound(t *testing.T) {
	repo := &fakeNotificationRepo{owners: map[uint]string{7: "uid-b"}}
	app := newNotificationTestApp(repo, "uid-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/notifications/7/read", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "not_found", body["error"])
}

func TestHandleNotificationMarkReadRejectsBadID(t *testing.T) {
	repo := &fakeNotificationRepo{owners: map[uint]string{}}
	app := newNotificationTestApp(repo, "uid-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/notifications/abc/read", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.readIDs)
}

func TestHandleNotificationsListOnlyOwn(t *testing.T) {
	repo := &fakeNotificationRepo{owners: map[uint]string{1: "uid-a", 2: "uid-b"}}
	app := newNotificationTestApp(repo, "uid-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	notifications := body["notifications"].([]interface{})
	require.Len(t, notifications, 1)
}
