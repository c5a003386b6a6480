package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/envaran/EnvaranMatch/app/controllers"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/accounts"
	"github.com/envaran/EnvaranMatch/internal/pkg/cache"
	"github.com/envaran/EnvaranMatch/internal/pkg/database"
	"github.com/envaran/EnvaranMatch/internal/pkg/env"
	"github.com/envaran/EnvaranMatch/internal/pkg/premium"
	"github.com/envaran/EnvaranMatch/internal/pkg/registration"
	"github.com/envaran/EnvaranMatch/internal/pkg/router"
	"github.com/envaran/EnvaranMatch/internal/pkg/taxonomy"
)

// NewApplication boots the full application: env, database, cache, service
// wiring, background sweeper and the fiber app with all routes installed.
func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())
	repos := repository.GetGlobalRepositories()

	provider := accounts.NewLocalProvider(repos.User)
	controllers.InitializeAuthController(provider)
	controllers.InitializeRegistrationController(registration.NewService(provider, repos.Registration))
	controllers.InitializePremiumController(premium.NewService(repos.User, repos.Notification))
	controllers.InitializeNotificationController(repos.Notification)

	taxonomyService := taxonomy.New(env.GetEnv("TAXONOMY_SHEET_URL", ""))
	if err := taxonomyService.LoadRemote(context.Background()); err != nil {
		log.Printf("caste sheet unavailable, using built-in table: %v", err)
	}
	controllers.InitializeTaxonomyController(taxonomyService)

	sweeper := premium.NewSweeper(repos.User)
	if err := sweeper.Start(); err != nil {
		log.Printf("premium expiry sweeper not started: %v", err)
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // registration payloads carry base64 images
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
