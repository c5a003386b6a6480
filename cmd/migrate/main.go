package main

import (
	"log"
	"os"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/internal/pkg/database"
	"github.com/envaran/EnvaranMatch/internal/pkg/env"
)

// Applies the schema and seeds baseline content. Run with "seed" to also
// create the default pages and the bootstrap admin account.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	db := database.GetDB()

	log.Println("schema migrated")

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seedPages()

		email := env.GetEnv("ADMIN_EMAIL", "")
		password := env.GetEnv("ADMIN_PASSWORD", "")
		if email == "" || password == "" {
			log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
			return
		}

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			log.Println("admin account already present")
			return
		}

		admin, err := models.NewUser("Administrator", email, password)
		if err != nil {
			log.Fatalf("admin seed failed: %v", err)
		}
		admin.Role = models.ROLE_ADMIN
		if err := db.Create(admin).Error; err != nil {
			log.Fatalf("admin seed failed: %v", err)
		}
		log.Printf("admin account %s created", email)
	}
}

func seedPages() {
	db := database.GetDB()

	pages := []models.Page{
		{Title: "About Us", Slug: "about", Content: "Envaran Matrimony helps Tamil families find matches.", IsActive: true},
		{Title: "Terms of Service", Slug: "terms", Content: "Terms of service.", IsActive: true},
		{Title: "Privacy Policy", Slug: "privacy", Content: "Privacy policy.", IsActive: true},
	}

	for _, page := range pages {
		var existing models.Page
		if err := db.Where("slug = ?", page.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&page).Error; err != nil {
			log.Printf("seed page %s failed: %v", page.Slug, err)
		}
	}
	log.Println("default pages seeded")
}
