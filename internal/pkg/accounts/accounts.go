package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
)

// Sentinel errors for account creation and sign-in. Controllers and the
// registration orchestrator match on these with errors.Is.
var (
	ErrEmailAlreadyInUse  = errors.New("accounts: email already in use")
	ErrWeakPassword       = errors.New("accounts: weak password")
	ErrInvalidEmail       = errors.New("accounts: invalid email")
	ErrNetwork            = errors.New("accounts: identity store unavailable")
	ErrInvalidCredentials = errors.New("accounts: invalid email or password")
)

// Provider is the identity boundary. Registration talks to it instead of the
// user table directly so the identity store can be swapped without touching
// the orchestrator.
type Provider interface {
	// CreateAccount provisions a new identity and returns its stable UID.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// SignIn verifies credentials and returns the matching UID.
	SignIn(ctx context.Context, email, password string) (string, error)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type localProvider struct {
	users repository.UserRepository
}

// NewLocalProvider returns a Provider backed by the users table with bcrypt
// password hashes.
func NewLocalProvider(users repository.UserRepository) Provider {
	return &localProvider{users: users}
}

func (p *localProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < 6 {
		return "", ErrWeakPassword
	}

	if _, err := p.users.GetByEmail(email); err == nil {
		return "", ErrEmailAlreadyInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	user, err := models.NewUser("", email, password)
	if err != nil {
		return "", fmt.Errorf("accounts: create user: %w", err)
	}
	if err := p.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailAlreadyInUse
		}
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return user.UID, nil
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := p.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	return user.UID, nil
}
