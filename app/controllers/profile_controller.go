package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/imagenormalizer"
	"github.com/envaran/EnvaranMatch/internal/pkg/premium"
	"github.com/envaran/EnvaranMatch/internal/pkg/usercontext"
)

var premiumService *premium.Service

// InitializePremiumController wires the premium status resolver used by the
// profile listing and the premium endpoints.
func InitializePremiumController(svc *premium.Service) {
	premiumService = svc
}

// HandleProfilesList returns completed registrations, newest first. Contact
// details and the raasi image are redacted unless the viewer holds an active
// premium plan; the expiry-aware check runs on every request.
func HandleProfilesList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	status, err := premiumService.CheckStatus(userCtx.UserID)
	if err != nil {
		log.Errorf("[Profiles] premium check for %d failed: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to resolve account status",
		})
	}

	offset, limit := pagination(c)
	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	registrations, err := repo.ListCompleted(offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load profiles",
		})
	}

	profiles := make([]fiber.Map, 0, len(registrations))
	for i := range registrations {
		profiles = append(profiles, profileView(&registrations[i], status.IsPremium))
	}

	return c.JSON(fiber.Map{
		"profiles":  profiles,
		"isPremium": status.IsPremium,
		"offset":    offset,
		"limit":     limit,
	})
}

// HandleProfileMe returns the caller's own registration, unredacted.
func HandleProfileMe(c *fiber.Ctx) error {
	reg, err := ownRegistration(c)
	if err != nil {
		return respondRegistrationError(c, err)
	}
	return c.JSON(reg)
}

// HandleProfileUpdate applies a partial edit to the caller's registration.
// Only fields present in the body are written; identity and moderation
// fields are never client-writable.
func HandleProfileUpdate(c *fiber.Ctx) error {
	reg, err := ownRegistration(c)
	if err != nil {
		return respondRegistrationError(c, err)
	}

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	fields := map[string]interface{}{}
	for key, value := range patch {
		column, ok := editableColumns[key]
		if !ok {
			continue
		}
		fields[column] = value
	}
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "No editable fields in request",
		})
	}

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	if err := repo.UpdateFields(reg.ID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{"message": "profile updated"})
}

// HandleProfilePhotoUpload normalizes an uploaded image and stores it on the
// caller's registration as a self-contained data URI.
func HandleProfilePhotoUpload(c *fiber.Ctx) error {
	reg, err := ownRegistration(c)
	if err != nil {
		return respondRegistrationError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Missing photo upload",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Could not read upload",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Could not read upload",
		})
	}

	uri, err := imagenormalizer.Normalize(data, imagenormalizer.DefaultOptions())
	if err != nil {
		switch {
		case errors.Is(err, imagenormalizer.ErrUnsupportedFormat):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error":   "unsupported_format",
				"message": "Please upload a JPEG, PNG or WebP image.",
			})
		case errors.Is(err, imagenormalizer.ErrTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error":   "image_too_large",
				"message": "The image is too large even after compression. Please choose a smaller one.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal_server_error",
				"message": "Image processing failed",
			})
		}
	}

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	if err := repo.UpdateFields(reg.ID, map[string]interface{}{"profile_image": uri}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to save photo",
		})
	}

	return c.JSON(fiber.Map{
		"message":        "photo updated",
		"estimatedBytes": imagenormalizer.EstimateBytes(uri),
	})
}

// HandleProfilePhotoDelete clears the caller's profile photo.
func HandleProfilePhotoDelete(c *fiber.Ctx) error {
	reg, err := ownRegistration(c)
	if err != nil {
		return respondRegistrationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	if err := repo.UpdateFields(reg.ID, map[string]interface{}{"profile_image": ""}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to remove photo",
		})
	}

	return c.JSON(fiber.Map{"message": "photo removed"})
}

// ownRegistration loads the caller's registration record.
func ownRegistration(c *fiber.Ctx) (*models.Registration, error) {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	return repo.GetByUserUID(userCtx.UserUID)
}

// respondRegistrationError maps a registration lookup failure to a response.
func respondRegistrationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "No registration found for this account",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_server_error",
		"message": "Failed to load registration",
	})
}

// profileView shapes a registration for the listing. Non-premium viewers get
// the redacted variant.
func profileView(reg *models.Registration, viewerPremium bool) fiber.Map {
	view := fiber.Map{
		"envaranId":     reg.EnvaranID,
		"name":          reg.Name,
		"gender":        reg.Gender,
		"age":           reg.Age,
		"motherTongue":  reg.MotherTongue,
		"maritalStatus": reg.MaritalStatus,
		"religion":      reg.Religion,
		"caste":         reg.Caste,
		"subCaste":      reg.SubCaste,
		"qualification": reg.Qualification,
		"job":           reg.Job,
		"placeOfJob":    reg.PlaceOfJob,
		"height":        reg.Height,
		"star":          reg.Star,
		"raasi":         reg.Raasi,
		"profileImage":  reg.ProfileImage,
		"description":   reg.Description,
	}

	if viewerPremium {
		view["contactNumber"] = reg.ContactNumber
		view["contactPerson"] = reg.ContactPerson
		view["presentAddress"] = reg.PresentAddress
		view["raasiImage"] = reg.RaasiImage
	}

	return view
}

// editableColumns maps client field names to registration columns for the
// partial update. Identity, status and moderation columns are deliberately
// absent.
var editableColumns = map[string]string{
	"name":              "name",
	"motherTongue":      "mother_tongue",
	"maritalStatus":     "marital_status",
	"religion":          "religion",
	"caste":             "caste",
	"subCaste":          "sub_caste",
	"fatherName":        "father_name",
	"fatherJob":         "father_job",
	"fatherAlive":       "father_alive",
	"motherName":        "mother_name",
	"motherJob":         "mother_job",
	"motherAlive":       "mother_alive",
	"orderOfBirth":      "order_of_birth",
	"height":            "height",
	"weight":            "weight",
	"bloodGroup":        "blood_group",
	"complexion":        "complexion",
	"disability":        "disability",
	"diet":              "diet",
	"qualification":     "qualification",
	"incomePerMonth":    "income_per_month",
	"job":               "job",
	"placeOfJob":        "place_of_job",
	"presentAddress":    "present_address",
	"permanentAddress":  "permanent_address",
	"contactNumber":     "contact_number",
	"contactPerson":     "contact_person",
	"ownHouse":          "own_house",
	"star":              "star",
	"laknam":            "laknam",
	"raasi":             "raasi",
	"gothram":           "gothram",
	"placeOfBirth":      "place_of_birth",
	"padam":             "padam",
	"dossam":            "dossam",
	"nativity":          "nativity",
	"horoscopeRequired": "horoscope_required",
	"balance":           "balance",
	"dasa":              "dasa",
	"otherDetails":      "other_details",
	"description":       "description",
}
