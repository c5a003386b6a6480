package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/usercontext"
)

var notificationRepo repository.NotificationRepository

// InitializeNotificationController wires the notification repository.
func InitializeNotificationController(repo repository.NotificationRepository) {
	notificationRepo = repo
}

// HandleNotificationsList returns the caller's notifications, newest first.
func HandleNotificationsList(c *fiber.Ctx) error {
	offset, limit := pagination(c)

	uid := usercontext.GetUserUID(c)
	notifications, err := notificationRepo.ListByUserUID(uid, offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load notifications",
		})
	}

	return c.JSON(fiber.Map{"notifications": notifications})
}

// HandleNotificationMarkRead flags one of the caller's own notifications as
// read. Notifications belonging to other accounts come back as 404.
func HandleNotificationMarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid notification id",
		})
	}

	uid := usercontext.GetUserUID(c)
	if err := notificationRepo.MarkRead(uint(id), uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to update notification",
		})
	}

	return c.JSON(fiber.Map{"message": "notification updated"})
}
