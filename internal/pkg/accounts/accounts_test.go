package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
)

type fakeUserRepo struct {
	repository.UserRepository
	byEmail   map[string]*models.User
	createErr error
	lookupErr error
	created   []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func TestCreateAccountSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	provider := NewLocalProvider(repo)

	uid, err := provider.CreateAccount(context.Background(), "Priya@Example.com", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, uid)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "priya@example.com", repo.created[0].Email)
	assert.Equal(t, uid, repo.created[0].UID)
	assert.True(t, repo.created[0].CheckPassword("secret123"))
	assert.Equal(t, models.PLAN_FREE, repo.created[0].Plan)
}

func TestCreateAccountInvalidEmail(t *testing.T) {
	provider := NewLocalProvider(newFakeUserRepo())

	for _, email := range []string{"", "not-an-email", "a@b", "missing@tld."} {
		_, err := provider.CreateAccount(context.Background(), email, "secret123")
		assert.ErrorIs(t, err, ErrInvalidEmail, email)
	}
}

func TestCreateAccountWeakPassword(t *testing.T) {
	provider := NewLocalProvider(newFakeUserRepo())

	_, err := provider.CreateAccount(context.Background(), "priya@example.com", "abc")

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	provider := NewLocalProvider(repo)

	_, err := provider.CreateAccount(context.Background(), "priya@example.com", "secret123")
	require.NoError(t, err)

	_, err = provider.CreateAccount(context.Background(), "priya@example.com", "other456")
	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestCreateAccountStoreUnavailable(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("connection refused")
	provider := NewLocalProvider(repo)

	_, err := provider.CreateAccount(context.Background(), "priya@example.com", "secret123")

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCreateAccountDuplicateKeyOnInsert(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	provider := NewLocalProvider(repo)

	_, err := provider.CreateAccount(context.Background(), "priya@example.com", "secret123")

	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestSignInSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	provider := NewLocalProvider(repo)

	uid, err := provider.CreateAccount(context.Background(), "priya@example.com", "secret123")
	require.NoError(t, err)

	got, err := provider.SignIn(context.Background(), "Priya@example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestSignInWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	provider := NewLocalProvider(repo)

	_, err := provider.CreateAccount(context.Background(), "priya@example.com", "secret123")
	require.NoError(t, err)

	_, err = provider.SignIn(context.Background(), "priya@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	provider := NewLocalProvider(newFakeUserRepo())

	_, err := provider.SignIn(context.Background(), "nobody@example.com", "secret123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
