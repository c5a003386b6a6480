package premium

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
)

var testNow = time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	repository.UserRepository
	users       map[uint]*models.User
	planUpdates map[uint]string
	downgraded  int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[uint]*models.User{}, planUpdates: map[uint]string{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePlan(id uint, plan string) error {
	f.planUpdates[id] = plan
	if u, ok := f.users[id]; ok {
		u.Plan = plan
	}
	return nil
}

func (f *fakeUserRepo) DowngradeExpired(now time.Time) (int64, error) {
	for _, u := range f.users {
		if u.Plan == models.PLAN_PREMIUM && u.PremiumExpiry != nil && u.PremiumExpiry.Before(now) {
			u.Plan = models.PLAN_FREE
			f.downgraded++
		}
	}
	return f.downgraded, nil
}

type fakeNotificationRepo struct {
	repository.NotificationRepository
	created   []*models.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func newService(users *fakeUserRepo, notifications *fakeNotificationRepo) *Service {
	s := NewService(users, notifications)
	s.now = func() time.Time { return testNow }
	return s
}

func premiumUser(id uint, expiry time.Time) *models.User {
	return &models.User{
		ID:              id,
		UID:             "uid-premium",
		Email:           "p@example.com",
		Plan:            models.PLAN_PREMIUM,
		PremiumPlan:     "Gold Plan",
		PremiumDuration: 6,
		PremiumExpiry:   &expiry,
	}
}

func TestCheckStatusActivePremium(t *testing.T) {
	users := newFakeUserRepo(premiumUser(1, testNow.Add(24*time.Hour)))
	svc := newService(users, &fakeNotificationRepo{})

	status, err := svc.CheckStatus(1)

	require.NoError(t, err)
	assert.True(t, status.IsPremium)
	assert.False(t, status.Expired)
	assert.Equal(t, "Gold Plan", status.PlanName)
	assert.Equal(t, 6, status.DurationMonths)
	assert.Empty(t, users.planUpdates)
}

// Reading the status of a lapsed premium account downgrades it in place.
func TestCheckStatusLazyDowngrade(t *testing.T) {
	users := newFakeUserRepo(premiumUser(1, testNow.Add(-time.Hour)))
	svc := newService(users, &fakeNotificationRepo{})

	status, err := svc.CheckStatus(1)

	require.NoError(t, err)
	assert.False(t, status.IsPremium)
	assert.True(t, status.Expired)
	assert.Equal(t, models.PLAN_FREE, users.planUpdates[1])

	// A second read finds the plan already settled and writes nothing more.
	users.planUpdates = map[uint]string{}
	status, err = svc.CheckStatus(1)
	require.NoError(t, err)
	assert.False(t, status.IsPremium)
	assert.Empty(t, users.planUpdates)
}

func TestCheckStatusFreeUserNoExpiry(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 2, Plan: models.PLAN_FREE})
	svc := newService(users, &fakeNotificationRepo{})

	status, err := svc.CheckStatus(2)

	require.NoError(t, err)
	assert.False(t, status.IsPremium)
	assert.False(t, status.Expired)
	assert.Nil(t, status.ExpiryDate)
}

func TestCheckStatusUnknownUser(t *testing.T) {
	svc := newService(newFakeUserRepo(), &fakeNotificationRepo{})

	status, err := svc.CheckStatus(99)

	require.NoError(t, err)
	assert.False(t, status.IsPremium)
}

func TestUpgradeSetsCalendarExpiry(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 3, UID: "uid-3", Plan: models.PLAN_FREE})
	notifications := &fakeNotificationRepo{}
	svc := newService(users, notifications)

	user, err := svc.Upgrade(3, "Gold Plan", 6)

	require.NoError(t, err)
	assert.Equal(t, models.PLAN_PREMIUM, user.Plan)
	assert.Equal(t, "Gold Plan", user.PremiumPlan)
	assert.Equal(t, 6, user.PremiumDuration)
	require.NotNil(t, user.PremiumExpiry)
	assert.Equal(t, testNow.AddDate(0, 6, 0), *user.PremiumExpiry)
	require.NotNil(t, user.PremiumActivatedAt)
	assert.Equal(t, testNow, *user.PremiumActivatedAt)

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, "uid-3", n.UserUID)
	assert.Equal(t, models.NOTIFICATION_PREMIUM_ACTIVATION, n.Type)
	assert.Contains(t, n.Message, "Gold Plan")
}

// Month arithmetic follows the calendar, so a one-month plan bought on
// 31 August lands on 1 October via normalization.
func TestUpgradeMonthEndNormalization(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 4, UID: "uid-4", Plan: models.PLAN_FREE})
	svc := newService(users, &fakeNotificationRepo{})

	user, err := svc.Upgrade(4, "Silver Plan", 1)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC), *user.PremiumExpiry)
}

func TestUpgradeSurvivesNotificationFailure(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 5, UID: "uid-5", Plan: models.PLAN_FREE})
	notifications := &fakeNotificationRepo{createErr: errors.New("insert failed")}
	svc := newService(users, notifications)

	user, err := svc.Upgrade(5, "Gold Plan", 3)

	require.NoError(t, err)
	assert.Equal(t, models.PLAN_PREMIUM, user.Plan)
}

func TestSweeperRunDowngradesExpired(t *testing.T) {
	expired := premiumUser(1, time.Now().Add(-48*time.Hour))
	active := premiumUser(2, time.Now().Add(48*time.Hour))
	active.UID = "uid-active"
	users := newFakeUserRepo(expired, active)

	sweeper := NewSweeper(users)
	sweeper.Run()

	assert.Equal(t, models.PLAN_FREE, users.users[1].Plan)
	assert.Equal(t, models.PLAN_PREMIUM, users.users[2].Plan)
}
