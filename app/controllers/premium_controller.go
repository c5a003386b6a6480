package controllers

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/imagenormalizer"
	"github.com/envaran/EnvaranMatch/internal/pkg/usercontext"
)

// HandlePremiumStatus resolves the caller's expiry-aware premium state. A
// lapsed plan is downgraded as part of this read.
func HandlePremiumStatus(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	status, err := premiumService.CheckStatus(userCtx.UserID)
	if err != nil {
		log.Errorf("[Premium] status check for %d failed: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to resolve premium status",
		})
	}

	return c.JSON(status)
}

// HandlePaymentSubmit records a manual payment claim: plan details, a
// transaction reference of at least five characters and a screenshot
// normalized with the tighter screenshot profile. The claim starts pending
// and is reviewed out of band.
func HandlePaymentSubmit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	transactionID := strings.TrimSpace(c.FormValue("transactionId"))
	if len(transactionID) < 5 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_transaction_id",
			"message": "Transaction ID must be at least 5 characters long.",
		})
	}

	plan := c.FormValue("plan")
	planName := c.FormValue("planName")
	amount := c.FormValue("amount")
	duration, _ := strconv.Atoi(c.FormValue("planDuration"))
	if plan == "" || planName == "" || duration <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "missing_plan",
			"message": "Plan, plan name and duration are required.",
		})
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Payment screenshot is required.",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Could not read screenshot",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Could not read screenshot",
		})
	}

	uri, err := imagenormalizer.Normalize(data, imagenormalizer.ScreenshotOptions())
	if err != nil {
		switch {
		case errors.Is(err, imagenormalizer.ErrUnsupportedFormat):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error":   "unsupported_format",
				"message": "Please upload the screenshot as JPEG, PNG or WebP.",
			})
		case errors.Is(err, imagenormalizer.ErrTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error":   "image_too_large",
				"message": "The screenshot is too large. Please upload a smaller image.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal_server_error",
				"message": "Screenshot processing failed",
			})
		}
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load account",
		})
	}

	payment := &models.PaymentSubmission{
		UserUID:          user.UID,
		UserEmail:        user.Email,
		UserName:         user.Name,
		Plan:             plan,
		PlanName:         planName,
		PlanDuration:     duration,
		Amount:           amount,
		TransactionID:    transactionID,
		ScreenshotName:   fileHeader.Filename,
		ScreenshotBase64: uri,
		Status:           models.PAYMENT_PENDING,
		SubmittedAt:      time.Now(),
	}
	if err := repository.GetGlobalFactory().GetPaymentRepository().Create(payment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to record payment",
		})
	}

	log.Infof("[Payment] %s submitted %s claim %s from %s", user.UID, planName, transactionID, GetClientIP(c))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      payment.ID,
		"status":  payment.Status,
		"message": "Payment submitted. Your premium plan will be activated after verification.",
	})
}

// HandlePaymentList returns the caller's own payment claims.
func HandlePaymentList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	payments, err := repository.GetGlobalFactory().GetPaymentRepository().ListByUserUID(userCtx.UserUID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load payments",
		})
	}

	views := make([]fiber.Map, 0, len(payments))
	for _, p := range payments {
		views = append(views, fiber.Map{
			"id":            p.ID,
			"planName":      p.PlanName,
			"planDuration":  p.PlanDuration,
			"amount":        p.Amount,
			"transactionId": p.TransactionID,
			"status":        p.Status,
			"submittedAt":   p.SubmittedAt,
		})
	}

	return c.JSON(fiber.Map{"payments": views})
}

type upgradeRequest struct {
	UserID    uint   `json:"userId"`
	PlanName  string `json:"planName"`
	Months    int    `json:"months"`
	PaymentID uint   `json:"paymentId"`
}

// HandlePremiumUpgrade activates a premium plan after out-of-band payment
// review. Admin only. If a payment claim is referenced it is marked approved.
func HandlePremiumUpgrade(c *fiber.Ctx) error {
	var req upgradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.UserID == 0 || req.PlanName == "" || req.Months <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_upgrade",
			"message": "userId, planName and months are required.",
		})
	}

	user, err := premiumService.Upgrade(req.UserID, req.PlanName, req.Months)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "User not found",
			})
		}
		log.Errorf("[Premium] upgrade for %d failed: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Upgrade failed",
		})
	}

	if req.PaymentID != 0 {
		if err := approvePayment(req.PaymentID, usercontext.GetUsername(c)); err != nil {
			log.Warnf("[Premium] could not mark payment %d approved: %v", req.PaymentID, err)
		}
	}

	return c.JSON(fiber.Map{
		"userId":        user.UID,
		"plan":          user.Plan,
		"premiumPlan":   user.PremiumPlan,
		"premiumExpiry": user.PremiumExpiry,
	})
}

func approvePayment(id uint, reviewer string) error {
	repo := repository.GetGlobalFactory().GetPaymentRepository()
	payment, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	payment.Status = models.PAYMENT_APPROVED
	payment.ReviewedAt = &now
	payment.ReviewedBy = reviewer
	return repository.GetGlobalFactory().GetPaymentRepository().Update(payment)
}
