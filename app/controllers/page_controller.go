package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/repository"
)

// HandlePageBySlug serves a static content page such as about or terms.
func HandlePageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := repository.GetGlobalFactory().GetPageRepository().GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "Page not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load page",
		})
	}

	return c.JSON(fiber.Map{
		"title":   page.Title,
		"slug":    page.Slug,
		"content": page.Content,
	})
}
