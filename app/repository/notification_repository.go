package repository

import (
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new notification
func (r *notificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListByUserUID returns a page of notifications for an account, newest first
func (r *notificationRepository) ListByUserUID(uid string, offset, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_uid = ?", uid).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, err
}

// MarkRead flags a notification as read. The update is scoped to the owning
// account; a miss on either id or owner reports ErrRecordNotFound.
func (r *notificationRepository) MarkRead(id uint, uid string) error {
	tx := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_uid = ?", id, uid).Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
