package registration

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/app/repository"
	"github.com/envaran/EnvaranMatch/internal/pkg/accounts"
	"github.com/envaran/EnvaranMatch/internal/pkg/envaranid"
	"github.com/envaran/EnvaranMatch/internal/pkg/regform"
)

// Result is what a successful submission hands back to the controller.
type Result struct {
	EnvaranID string `json:"envaranId"`
	UserUID   string `json:"userId"`
}

// AccountCreationError wraps an identity failure with the user-facing reason
// code and message.
type AccountCreationError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AccountCreationError) Error() string { return e.Message }
func (e *AccountCreationError) Unwrap() error { return e.Err }

// ErrPersistence marks the case where the account exists but the registration
// record could not be written.
var ErrPersistence = errors.New("registration: could not save registration")

// Service orchestrates the full submission: validate the draft, provision the
// identity, allocate the Envaran ID, persist the registration record. The
// steps are not transactional; an identity can outlive a failed registration
// write and is logged for manual cleanup.
type Service struct {
	accounts      accounts.Provider
	registrations repository.RegistrationRepository
	allocator     *envaranid.Allocator
	now           func() time.Time
}

// NewService wires the orchestrator. The ID allocator counts rows through the
// same registration repository it writes to.
func NewService(provider accounts.Provider, registrations repository.RegistrationRepository) *Service {
	return &Service{
		accounts:      provider,
		registrations: registrations,
		allocator:     envaranid.New(registrations),
		now:           time.Now,
	}
}

// Submit runs the whole registration flow. Validation failures come back as
// *regform.ValidationError, identity failures as *AccountCreationError, and
// persistence failures wrap ErrPersistence.
func (s *Service) Submit(ctx context.Context, draft *regform.Draft) (*Result, error) {
	if verr := regform.ValidateAll(draft, s.now()); verr != nil {
		return nil, verr
	}

	uid, err := s.accounts.CreateAccount(ctx, draft.Email, draft.Password)
	if err != nil {
		return nil, mapAccountError(err)
	}

	envaranID, degraded := s.allocator.Next()
	if degraded {
		log.Warnf("[Registration] degraded ID allocation for %s", uid)
	}

	reg := buildRegistration(draft, uid, envaranID, s.now())
	if err := s.registrations.Create(reg); err != nil {
		// The identity was already provisioned and is now orphaned; there is
		// no rollback. Log it so support can reconcile by hand.
		log.Errorf("[Registration] account %s created but registration write failed: %v", uid, err)
		return nil, fmt.Errorf("%w: account %s has no registration record: %v", ErrPersistence, uid, err)
	}

	log.Infof("[Registration] %s registered as %s", uid, envaranID)
	return &Result{EnvaranID: envaranID, UserUID: uid}, nil
}

func mapAccountError(err error) *AccountCreationError {
	switch {
	case errors.Is(err, accounts.ErrEmailAlreadyInUse):
		return &AccountCreationError{
			Reason:  "email-already-in-use",
			Message: "This email address is already registered. Please use a different email or try logging in instead.",
			Err:     err,
		}
	case errors.Is(err, accounts.ErrWeakPassword):
		return &AccountCreationError{
			Reason:  "weak-password",
			Message: "Password is too weak. Please choose a stronger password with at least 6 characters.",
			Err:     err,
		}
	case errors.Is(err, accounts.ErrInvalidEmail):
		return &AccountCreationError{
			Reason:  "invalid-email",
			Message: "Please enter a valid email address.",
			Err:     err,
		}
	case errors.Is(err, accounts.ErrNetwork):
		return &AccountCreationError{
			Reason:  "network-request-failed",
			Message: "Network error. Please check your internet connection and try again.",
			Err:     err,
		}
	default:
		return &AccountCreationError{
			Reason:  "unknown",
			Message: "There was an error creating your account. Please try again.",
			Err:     err,
		}
	}
}

func buildRegistration(d *regform.Draft, uid, envaranID string, now time.Time) *models.Registration {
	age, _ := regform.CalculateAge(d.DateOfBirth, now)

	return &models.Registration{
		UserUID:     uid,
		EnvaranID:   envaranID,
		Status:      models.REGISTRATION_COMPLETED,
		SubmittedAt: now,

		Name:          d.Name,
		Gender:        d.Gender,
		DateOfBirth:   d.DateOfBirth,
		Age:           age,
		MotherTongue:  d.MotherTongue,
		MaritalStatus: d.MaritalStatus,
		Religion:      d.Religion,
		Caste:         d.Caste,
		SubCaste:      d.SubCaste,

		FatherName:   d.FatherName,
		FatherJob:    d.FatherJob,
		FatherAlive:  d.FatherAlive,
		MotherName:   d.MotherName,
		MotherJob:    d.MotherJob,
		MotherAlive:  d.MotherAlive,
		OrderOfBirth: d.OrderOfBirth,

		Height:     d.Height,
		Weight:     d.Weight,
		BloodGroup: d.BloodGroup,
		Complexion: d.Complexion,
		Disability: d.Disability,
		Diet:       d.Diet,

		Qualification:  d.Qualification,
		IncomePerMonth: d.IncomePerMonth,
		Job:            d.Job,
		PlaceOfJob:     d.PlaceOfJob,

		PresentAddress:   d.PresentAddress,
		PermanentAddress: d.PermanentAddress,
		ContactNumber:    d.ContactNumber,
		ContactPerson:    d.ContactPerson,

		OwnHouse: d.OwnHouse,
		Star:     d.Star,
		Laknam:   d.Laknam,
		TimeOfBirth: models.TimeOfBirth{
			Hour:   d.TimeOfBirthHour,
			Minute: d.TimeOfBirthMinute,
			Period: d.TimeOfBirthPeriod,
		},
		Raasi:        d.Raasi,
		RaasiImage:   d.RaasiImage,
		Gothram:      d.Gothram,
		PlaceOfBirth: d.PlaceOfBirth,
		Padam:        d.Padam,
		Dossam:       d.Dossam,
		Nativity:     d.Nativity,

		HoroscopeRequired: d.HoroscopeRequired,
		Balance:           d.Balance,
		Dasa:              d.Dasa,
		DasaPeriod: models.DasaPeriod{
			Years:  d.DasaPeriodYears,
			Months: d.DasaPeriodMonths,
			Days:   d.DasaPeriodDays,
		},

		PartnerExpectations: models.PartnerExpectations{
			Job:              d.PartnerJob,
			PreferredAgeFrom: atoiOrZero(d.PreferredAgeFrom),
			PreferredAgeTo:   atoiOrZero(d.PreferredAgeTo),
			JobPreference:    d.JobPreference,
			Diet:             d.PartnerDiet,
			MaritalStatus:    strings.Join(d.PartnerMaritalStatus, ","),
			Caste:            d.PartnerCaste,
			SubCaste:         d.PartnerSubCaste,
			Comments:         d.PartnerComments,
		},

		OtherDetails: d.OtherDetails,
		Description:  d.Description,
		ProfileImage: d.ProfileImage,
	}
}

func atoiOrZero(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
