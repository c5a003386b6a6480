package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	PAYMENT_PENDING  = "pending"
	PAYMENT_APPROVED = "approved"
	PAYMENT_REJECTED = "rejected"
)

// PaymentSubmission is a user's claim of having paid for a premium upgrade.
// The service only records it; review and the status flip to approved or
// rejected happen out of band.
type PaymentSubmission struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserUID          string         `gorm:"index;type:varchar(36);not null" json:"userId"`
	UserEmail        string         `gorm:"type:varchar(200)" json:"userEmail"`
	UserName         string         `gorm:"type:varchar(150)" json:"userName"`
	Plan             string         `gorm:"type:varchar(50)" json:"plan"`
	PlanName         string         `gorm:"type:varchar(100)" json:"planName"`
	PlanDuration     int            `gorm:"default:0" json:"planDuration"` // months
	Amount           string         `gorm:"type:varchar(20)" json:"amount"`
	TransactionID    string         `gorm:"type:varchar(100);not null" json:"transactionId" validate:"required,min=5"`
	ScreenshotName   string         `gorm:"type:varchar(255)" json:"screenshotName"`
	ScreenshotBase64 string         `gorm:"type:longtext" json:"screenshotBase64"`
	Status           string         `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"oneof=pending approved rejected"`
	SubmittedAt      time.Time      `gorm:"type:timestamp;not null" json:"submittedAt"`
	ReviewedAt       *time.Time     `gorm:"type:timestamp;default:null" json:"reviewedAt,omitempty"`
	ReviewedBy       string         `gorm:"type:varchar(150);default:null" json:"reviewedBy,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *PaymentSubmission) Validate() error {
	v := validator.New()
	return v.Struct(p)
}
