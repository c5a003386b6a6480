package repository

import (
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// pageRepository implements the PageRepository interface
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository instance
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

// GetBySlug retrieves an active page by its slug
func (r *pageRepository) GetBySlug(slug string) (*models.Page, error) {
	return models.FindPageBySlug(r.db, slug)
}

// GetActive returns all active pages
func (r *pageRepository) GetActive() ([]models.Page, error) {
	return models.GetActivePages(r.db)
}

// Create persists a new page
func (r *pageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// Update saves an existing page
func (r *pageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}
