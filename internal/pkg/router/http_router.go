package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/envaran/EnvaranMatch/app/controllers"
	"github.com/envaran/EnvaranMatch/internal/pkg/middleware"
	"github.com/envaran/EnvaranMatch/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Post("/login", controllers.HandleAuthLogin)
	app.Post("/logout", controllers.HandleAuthLogout)
	app.Get("/pages/:slug", controllers.HandlePageBySlug)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
