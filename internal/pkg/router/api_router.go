package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/envaran/EnvaranMatch/app/controllers"
	"github.com/envaran/EnvaranMatch/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// Public intake and taxonomy
	v1.Get("/stats", controllers.HandleStats)
	v1.Post("/register/validate", controllers.HandleRegisterValidate)
	v1.Post("/register", controllers.HandleRegisterSubmit)
	v1.Get("/taxonomy/castes", controllers.HandleTaxonomyCastes)
	v1.Get("/taxonomy/castes/:caste/subcastes", controllers.HandleTaxonomySubCastes)

	// Session-authenticated surface
	authed := v1.Group("", middleware.RequireAPISessionAuth)
	authed.Get("/profiles", controllers.HandleProfilesList)
	authed.Get("/profiles/me", controllers.HandleProfileMe)
	authed.Patch("/profiles/me", controllers.HandleProfileUpdate)
	authed.Post("/profiles/me/photo", controllers.HandleProfilePhotoUpload)
	authed.Delete("/profiles/me/photo", controllers.HandleProfilePhotoDelete)
	authed.Get("/premium/status", controllers.HandlePremiumStatus)
	authed.Post("/premium/payments", controllers.HandlePaymentSubmit)
	authed.Get("/premium/payments", controllers.HandlePaymentList)
	authed.Get("/notifications", controllers.HandleNotificationsList)
	authed.Post("/notifications/:id/read", controllers.HandleNotificationMarkRead)

	// Manual activation after out-of-band payment review
	v1.Post("/premium/upgrade", middleware.RequireAPIAdmin, controllers.HandlePremiumUpgrade)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
