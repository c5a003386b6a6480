package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/accounts"
	"github.com/envaran/EnvaranMatch/internal/pkg/session"
	"github.com/envaran/EnvaranMatch/internal/pkg/usercontext"
)

var accountsProvider accounts.Provider

// InitializeAuthController wires the accounts provider used by login.
func InitializeAuthController(provider accounts.Provider) {
	accountsProvider = provider
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAuthLogin verifies credentials against the accounts provider and
// opens a session.
func HandleAuthLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	uid, err := accountsProvider.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			// notice: in production you should not inform the user
			// with detailed messages about login failures
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": "There is a problem with the login process",
			})
		}
		log.Errorf("[Auth] sign-in failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "bad_gateway",
			"message": "Login is temporarily unavailable. Please try again.",
		})
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByUID(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load user",
		})
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to open session",
		})
	}

	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUserUID, user.UID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)
	sess.Set(usercontext.KeyUserPlan, user.Plan)

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to save session",
		})
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repository.GetGlobalFactory().GetUserRepository().Update(user); err != nil {
		log.Warnf("[Auth] could not update last login for %s: %v", user.UID, err)
	}

	return c.JSON(fiber.Map{
		"userId":  user.UID,
		"isAdmin": user.Role == models.ROLE_ADMIN,
		"plan":    user.Plan,
	})
}

// HandleAuthLogout destroys the current session.
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Warnf("[Auth] session destroy failed: %v", err)
		}
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}
