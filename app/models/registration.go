package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	REGISTRATION_PENDING   = "pending"
	REGISTRATION_COMPLETED = "completed"
)

// TimeOfBirth keeps the hour/minute/period triple the astrology section
// collects. Stored flattened into the registrations table.
type TimeOfBirth struct {
	Hour   string `gorm:"type:varchar(5)" json:"hour"`
	Minute string `gorm:"type:varchar(5)" json:"minute"`
	Period string `gorm:"type:varchar(5)" json:"period"` // AM / PM
}

// DasaPeriod is the remaining dasa balance in years/months/days.
type DasaPeriod struct {
	Years  string `gorm:"type:varchar(5)" json:"years"`
	Months string `gorm:"type:varchar(5)" json:"months"`
	Days   string `gorm:"type:varchar(5)" json:"days"`
}

// PartnerExpectations groups the partner-preference fields. MaritalStatus is
// a comma-joined multi-select.
type PartnerExpectations struct {
	Job              string `gorm:"type:varchar(150)" json:"job"`
	PreferredAgeFrom int    `gorm:"default:0" json:"preferredAgeFrom"`
	PreferredAgeTo   int    `gorm:"default:0" json:"preferredAgeTo"`
	JobPreference    string `gorm:"type:varchar(50)" json:"jobPreference"`
	Diet             string `gorm:"type:varchar(50)" json:"diet"`
	MaritalStatus    string `gorm:"type:varchar(255)" json:"maritalStatus"`
	Caste            string `gorm:"type:varchar(100)" json:"caste"`
	SubCaste         string `gorm:"type:varchar(100)" json:"subCaste"`
	Comments         string `gorm:"type:text" json:"comments"`
}

// Registration is the authoritative intake record for one registrant.
//
// EnvaranID is assigned exactly once by the submission orchestrator and never
// changes afterwards. The record is created by the orchestrator only;
// later writes come from the registrant (profile edit) or from the external
// moderation process (approval fields).
type Registration struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserUID         string         `gorm:"index;type:varchar(36);not null" json:"userId"`
	EnvaranID       string         `gorm:"uniqueIndex;type:varchar(20);not null" json:"envaranId" validate:"required"`
	Status          string         `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"oneof=pending completed"`
	SubmittedAt     time.Time      `gorm:"type:timestamp;not null" json:"submittedAt"`
	ApprovedAt      *time.Time     `gorm:"type:timestamp;default:null" json:"approvedAt,omitempty"`
	ApprovedBy      string         `gorm:"type:varchar(150);default:null" json:"approvedBy,omitempty"`
	RejectionReason string         `gorm:"type:text;default:null" json:"rejectionReason,omitempty"`

	// Personal details
	Name          string `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Gender        string `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth   string `gorm:"type:varchar(10)" json:"dateOfBirth"` // DD-MM-YYYY
	Age           int    `gorm:"default:0" json:"age"`
	MotherTongue  string `gorm:"type:varchar(50)" json:"motherTongue"`
	MaritalStatus string `gorm:"type:varchar(50)" json:"maritalStatus"`
	Religion      string `gorm:"type:varchar(50)" json:"religion"`
	Caste         string `gorm:"type:varchar(100)" json:"caste"`
	SubCaste      string `gorm:"type:varchar(100)" json:"subCaste"`

	// Family details
	FatherName   string `gorm:"type:varchar(150)" json:"fatherName"`
	FatherJob    string `gorm:"type:varchar(150)" json:"fatherJob"`
	FatherAlive  string `gorm:"type:varchar(10)" json:"fatherAlive"`
	MotherName   string `gorm:"type:varchar(150)" json:"motherName"`
	MotherJob    string `gorm:"type:varchar(150)" json:"motherJob"`
	MotherAlive  string `gorm:"type:varchar(10)" json:"motherAlive"`
	OrderOfBirth string `gorm:"type:varchar(50)" json:"orderOfBirth"`

	// Physical attributes
	Height     string `gorm:"type:varchar(20)" json:"height"`
	Weight     string `gorm:"type:varchar(20)" json:"weight"`
	BloodGroup string `gorm:"type:varchar(10)" json:"bloodGroup"`
	Complexion string `gorm:"type:varchar(50)" json:"complexion"`
	Disability string `gorm:"type:varchar(150)" json:"disability"`
	Diet       string `gorm:"type:varchar(50)" json:"diet"`

	// Education and occupation
	Qualification  string `gorm:"type:varchar(150)" json:"qualification"`
	IncomePerMonth string `gorm:"type:varchar(50)" json:"incomePerMonth"`
	Job            string `gorm:"type:varchar(150)" json:"job"`
	PlaceOfJob     string `gorm:"type:varchar(150)" json:"placeOfJob"`

	// Communication details
	PresentAddress   string `gorm:"type:text" json:"presentAddress"`
	PermanentAddress string `gorm:"type:text" json:"permanentAddress"`
	ContactNumber    string `gorm:"type:varchar(20)" json:"contactNumber"`
	ContactPerson    string `gorm:"type:varchar(150)" json:"contactPerson"`

	// Astrology details
	OwnHouse     string      `gorm:"type:varchar(10)" json:"ownHouse"`
	Star         string      `gorm:"type:varchar(50)" json:"star"`
	Laknam       string      `gorm:"type:varchar(50)" json:"laknam"`
	TimeOfBirth  TimeOfBirth `gorm:"embedded;embeddedPrefix:time_of_birth_" json:"timeOfBirth"`
	Raasi        string      `gorm:"type:varchar(50)" json:"raasi"`
	RaasiImage   string      `gorm:"type:longtext" json:"raasiImage,omitempty"` // base64 data URI
	Gothram      string      `gorm:"type:varchar(100)" json:"gothram"`
	PlaceOfBirth string      `gorm:"type:varchar(150)" json:"placeOfBirth"`
	Padam        string      `gorm:"type:varchar(50)" json:"padam"`
	Dossam       string      `gorm:"type:varchar(50)" json:"dossam"`
	Nativity     string      `gorm:"type:varchar(150)" json:"nativity"`

	// Horoscope details
	HoroscopeRequired string     `gorm:"type:varchar(10)" json:"horoscopeRequired"`
	Balance           string     `gorm:"type:varchar(50)" json:"balance"`
	Dasa              string     `gorm:"type:varchar(50)" json:"dasa"`
	DasaPeriod        DasaPeriod `gorm:"embedded;embeddedPrefix:dasa_period_" json:"dasaPeriod"`

	// Partner expectations
	PartnerExpectations PartnerExpectations `gorm:"embedded;embeddedPrefix:partner_" json:"partnerExpectations"`

	// Additional details
	OtherDetails string `gorm:"type:text" json:"otherDetails"`
	Description  string `gorm:"type:text" json:"description"`

	// Images (self-contained base64 data URIs)
	ProfileImage string `gorm:"type:longtext" json:"profileImage,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Registration) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

// IsCompleted reports whether the registration finished the intake flow.
func (r *Registration) IsCompleted() bool {
	return r.Status == REGISTRATION_COMPLETED
}
