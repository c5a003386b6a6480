package premium

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
)

// Status is the expiry-aware premium state of an account.
type Status struct {
	IsPremium      bool       `json:"isPremium"`
	Expired        bool       `json:"expired"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	PlanName       string     `json:"planName,omitempty"`
	DurationMonths int        `json:"duration,omitempty"`
}

// Service owns premium state transitions. Downgrades happen lazily on read
// and nightly through the sweeper; upgrades come from payment approval.
type Service struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewService wires the premium resolver.
func NewService(users repository.UserRepository, notifications repository.NotificationRepository) *Service {
	return &Service{users: users, notifications: notifications, now: time.Now}
}

// CheckStatus resolves the current premium state of an account. A premium
// account whose expiry has passed is downgraded to free as a side effect of
// the read, so callers always see settled state. Missing accounts and
// accounts without an expiry resolve to a free status, never an error.
func (s *Service) CheckStatus(userID uint) (Status, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("premium: load user %d: %w", userID, err)
	}

	if user.PremiumExpiry == nil {
		return Status{}, nil
	}

	now := s.now()
	expired := now.After(*user.PremiumExpiry)

	if expired && user.Plan == models.PLAN_PREMIUM {
		if err := s.users.UpdatePlan(user.ID, models.PLAN_FREE); err != nil {
			return Status{}, fmt.Errorf("premium: downgrade user %d: %w", userID, err)
		}
		log.Infof("[Premium] user %d downgraded, expired %s", user.ID, user.PremiumExpiry.Format(time.RFC3339))
	}

	return Status{
		IsPremium:      user.Plan == models.PLAN_PREMIUM && !expired,
		Expired:        expired,
		ExpiryDate:     user.PremiumExpiry,
		PlanName:       user.PremiumPlan,
		DurationMonths: user.PremiumDuration,
	}, nil
}

// Upgrade activates a premium plan for an account. The expiry is the
// activation instant plus the plan duration in calendar months, and a
// premium_activation notification is recorded for the account.
func (s *Service) Upgrade(userID uint, planName string, durationMonths int) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("premium: load user %d: %w", userID, err)
	}

	now := s.now()
	expiry := now.AddDate(0, durationMonths, 0)

	user.Plan = models.PLAN_PREMIUM
	user.PremiumPlan = planName
	user.PremiumDuration = durationMonths
	user.PremiumExpiry = &expiry
	user.PremiumActivatedAt = &now

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("premium: activate user %d: %w", userID, err)
	}

	notification := &models.Notification{
		UserUID: user.UID,
		Type:    models.NOTIFICATION_PREMIUM_ACTIVATION,
		Title:   "Premium Activated!",
		Message: fmt.Sprintf("Welcome to %s! You now have access to all premium features.", planName),
	}
	if err := s.notifications.Create(notification); err != nil {
		// the upgrade stands even without the notification
		log.Warnf("[Premium] activation notification for %s failed: %v", user.UID, err)
	}

	log.Infof("[Premium] user %d upgraded to %s until %s", user.ID, planName, expiry.Format(time.RFC3339))
	return user, nil
}
