package repository

import (
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// registrationRepository implements the RegistrationRepository interface
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create persists a new registration record
func (r *registrationRepository) Create(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

// GetByID retrieves a registration by its ID
func (r *registrationRepository) GetByID(id uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByUserUID retrieves the registration belonging to an account UID
func (r *registrationRepository) GetByUserUID(uid string) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("user_uid = ?", uid).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByEnvaranID retrieves a registration by its human-readable identifier
func (r *registrationRepository) GetByEnvaranID(envaranID string) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("envaran_id = ?", envaranID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Update saves a full registration record
func (r *registrationRepository) Update(reg *models.Registration) error {
	return r.db.Save(reg).Error
}

// UpdateFields writes only the given columns; used by the profile edit flow
// which sets only the fields the registrant actually changed.
func (r *registrationRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Registration{}).Where("id = ?", id).Updates(fields).Error
}

// ListCompleted returns completed registrations in submission order, newest
// first. No ranking is applied.
func (r *registrationRepository) ListCompleted(offset, limit int) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("status = ?", models.REGISTRATION_COMPLETED).
		Order("submitted_at DESC").Offset(offset).Limit(limit).Find(&regs).Error
	return regs, err
}

// Count returns the total number of registration records
func (r *registrationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Count(&count).Error
	return count, err
}
