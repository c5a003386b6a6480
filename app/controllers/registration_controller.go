package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/envaran/EnvaranMatch/internal/pkg/regform"
	"github.com/envaran/EnvaranMatch/internal/pkg/registration"
)

var registrationService *registration.Service

// InitializeRegistrationController wires the submission orchestrator.
func InitializeRegistrationController(svc *registration.Service) {
	registrationService = svc
}

type validateStepRequest struct {
	Step  int           `json:"step"`
	Draft regform.Draft `json:"draft"`
}

// HandleRegisterValidate checks a single form step so the client can gate
// step advancement server-side.
func HandleRegisterValidate(c *fiber.Ctx) error {
	var req validateStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.Step < 1 || req.Step > regform.TotalSteps {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Step must be between 1 and 7",
		})
	}

	if verr := regform.ValidateStep(req.Step, &req.Draft, timeNow()); verr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"valid":      false,
			"validation": verr,
		})
	}

	return c.JSON(fiber.Map{"valid": true})
}

// HandleRegisterSubmit runs the full submission flow and returns the minted
// Envaran ID on success.
func HandleRegisterSubmit(c *fiber.Ctx) error {
	var draft regform.Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	result, err := registrationService.Submit(c.Context(), &draft)
	if err != nil {
		var verr *regform.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":      "validation_failed",
				"validation": verr,
			})
		}

		var aerr *registration.AccountCreationError
		if errors.As(err, &aerr) {
			status := fiber.StatusBadGateway
			switch aerr.Reason {
			case "email-already-in-use":
				status = fiber.StatusConflict
			case "weak-password", "invalid-email":
				status = fiber.StatusUnprocessableEntity
			}
			return c.Status(status).JSON(fiber.Map{
				"error":   aerr.Reason,
				"message": aerr.Message,
			})
		}

		log.Errorf("[Registration] submit failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Registration could not be saved. Please contact support.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"envaranId": result.EnvaranID,
		"userId":    result.UserUID,
	})
}
