package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NOTIFICATION_PREMIUM_ACTIVATION = "premium_activation"
	NOTIFICATION_SYSTEM             = "system"
)

type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserUID   string         `gorm:"index;type:varchar(36);not null" json:"userId"`
	Type      string         `gorm:"type:varchar(50)" json:"type" validate:"oneof=premium_activation system"`
	Title     string         `gorm:"type:varchar(150)" json:"title"`
	Message   string         `gorm:"type:text" json:"message"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
