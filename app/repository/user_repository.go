package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUID retrieves a user by their opaque account UID
func (r *userRepository) GetByUID(uid string) (*models.User, error) {
	var user models.User
	err := r.db.Where("uid = ?", uid).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdatePlan writes only the plan column for a user
func (r *userRepository) UpdatePlan(id uint, plan string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("plan", plan).Error
}

// DowngradeExpired bulk-downgrades premium users whose expiry has passed.
// Returns the number of affected rows.
func (r *userRepository) DowngradeExpired(now time.Time) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("plan = ? AND premium_expiry IS NOT NULL AND premium_expiry < ?", models.PLAN_PREMIUM, now).
		Update("plan", models.PLAN_FREE)
	return res.RowsAffected, res.Error
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
