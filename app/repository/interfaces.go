package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUID(uid string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePlan(id uint, plan string) error
	DowngradeExpired(now time.Time) (int64, error)
	Count() (int64, error)
}

// RegistrationRepository defines the interface for registration records
type RegistrationRepository interface {
	Create(reg *models.Registration) error
	GetByID(id uint) (*models.Registration, error)
	GetByUserUID(uid string) (*models.Registration, error)
	GetByEnvaranID(envaranID string) (*models.Registration, error)
	Update(reg *models.Registration) error
	UpdateFields(id uint, fields map[string]interface{}) error
	ListCompleted(offset, limit int) ([]models.Registration, error)
	Count() (int64, error)
}

// PaymentRepository defines the interface for payment submissions
type PaymentRepository interface {
	Create(p *models.PaymentSubmission) error
	GetByID(id uint) (*models.PaymentSubmission, error)
	Update(p *models.PaymentSubmission) error
	ListByUserUID(uid string) ([]models.PaymentSubmission, error)
}

// NotificationRepository defines the interface for notification records
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUserUID(uid string, offset, limit int) ([]models.Notification, error)
	MarkRead(id uint, uid string) error
}

// PageRepository defines the interface for static content pages
type PageRepository interface {
	GetBySlug(slug string) (*models.Page, error)
	GetActive() ([]models.Page, error)
	Create(page *models.Page) error
	Update(page *models.Page) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Registration RegistrationRepository
	Payment      PaymentRepository
	Notification NotificationRepository
	Page         PageRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Registration: NewRegistrationRepository(db),
		Payment:      NewPaymentRepository(db),
		Notification: NewNotificationRepository(db),
		Page:         NewPageRepository(db),
	}
}
