package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"

	PLAN_FREE    = "free"
	PLAN_PREMIUM = "premium"
)

// User is an account record. The UID is the opaque identity handed out by the
// accounts provider; registrations reference users through it, never through
// the numeric primary key.
type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UID                string         `gorm:"uniqueIndex;type:varchar(36);not null" json:"uid"`
	Name               string         `gorm:"type:varchar(150)" json:"name" validate:"max=150"`
	Email              string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Password           string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role               string         `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Plan               string         `gorm:"type:varchar(20);default:'free'" json:"plan" validate:"oneof=free premium"`
	PremiumPlan        string         `gorm:"type:varchar(100);default:null" json:"premium_plan,omitempty"`
	PremiumDuration    int            `gorm:"default:0" json:"premium_duration,omitempty"` // months
	PremiumExpiry      *time.Time     `gorm:"type:timestamp;default:null" json:"premium_expiry,omitempty"`
	PremiumActivatedAt *time.Time     `gorm:"type:timestamp;default:null" json:"premium_activated_at,omitempty"`
	LastLoginAt        *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// NewUser builds an account with a fresh UID and a hashed password. New
// accounts always start on the free plan.
func NewUser(name string, email string, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		UID:      uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     ROLE_USER,
		Plan:     PLAN_FREE,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// IsPremium reports whether the stored plan is premium. It does not consult
// the expiry timestamp; callers that need expiry-aware state go through the
// premium status resolver.
func (u *User) IsPremium() bool {
	return u.Plan == PLAN_PREMIUM
}
