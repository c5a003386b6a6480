package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/envaran/EnvaranMatch/internal/pkg/statistics"
)

// HandleStats serves the public landing page counters.
func HandleStats(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatistics())
}
