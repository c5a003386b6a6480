package repository

import (
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment submission
func (r *paymentRepository) Create(p *models.PaymentSubmission) error {
	return r.db.Create(p).Error
}

// GetByID retrieves a payment submission by its ID
func (r *paymentRepository) GetByID(id uint) (*models.PaymentSubmission, error) {
	var p models.PaymentSubmission
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update saves an existing payment submission
func (r *paymentRepository) Update(p *models.PaymentSubmission) error {
	return r.db.Save(p).Error
}

// ListByUserUID returns all payment submissions for an account, newest first
func (r *paymentRepository) ListByUserUID(uid string) ([]models.PaymentSubmission, error) {
	var payments []models.PaymentSubmission
	err := r.db.Where("user_uid = ?", uid).Order("submitted_at DESC").Find(&payments).Error
	return payments, err
}
