package regform

// Draft holds the raw registration form as submitted by the client. Every
// field is optional at the type level; the step validators decide which are
// required. Values stay strings end to end so partially filled forms can be
// round-tripped without loss.
type Draft struct {
	// Personal details
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"` // DD-MM-YYYY
	MotherTongue  string `json:"motherTongue"`
	MaritalStatus string `json:"maritalStatus"`
	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	SubCaste      string `json:"subCaste"`

	// Family details
	FatherName   string `json:"fatherName"`
	FatherJob    string `json:"fatherJob"`
	FatherAlive  string `json:"fatherAlive"`
	MotherName   string `json:"motherName"`
	MotherJob    string `json:"motherJob"`
	MotherAlive  string `json:"motherAlive"`
	OrderOfBirth string `json:"orderOfBirth"`

	// Physical attributes
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	BloodGroup string `json:"bloodGroup"`
	Complexion string `json:"complexion"`
	Disability string `json:"disability"`
	Diet       string `json:"diet"`

	// Education and occupation
	Qualification  string `json:"qualification"`
	IncomePerMonth string `json:"incomePerMonth"`
	Job            string `json:"job"`
	PlaceOfJob     string `json:"placeOfJob"`

	// Communication details
	PresentAddress   string `json:"presentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	ContactNumber    string `json:"contactNumber"`
	ContactPerson    string `json:"contactPerson"`

	// Astrology details
	OwnHouse          string `json:"ownHouse"`
	Star              string `json:"star"`
	Laknam            string `json:"laknam"`
	TimeOfBirthHour   string `json:"timeOfBirthHour"`
	TimeOfBirthMinute string `json:"timeOfBirthMinute"`
	TimeOfBirthPeriod string `json:"timeOfBirthPeriod"`
	Raasi             string `json:"raasi"`
	RaasiImage        string `json:"raasiImage"`
	Gothram           string `json:"gothram"`
	PlaceOfBirth      string `json:"placeOfBirth"`
	Padam             string `json:"padam"`
	Dossam            string `json:"dossam"`
	Nativity          string `json:"nativity"`

	// Horoscope details
	HoroscopeRequired string `json:"horoscopeRequired"`
	Balance           string `json:"balance"`
	Dasa              string `json:"dasa"`
	DasaPeriodYears   string `json:"dasaPeriodYears"`
	DasaPeriodMonths  string `json:"dasaPeriodMonths"`
	DasaPeriodDays    string `json:"dasaPeriodDays"`

	// Partner expectations
	PartnerJob           string   `json:"partnerJob"`
	PreferredAgeFrom     string   `json:"preferredAgeFrom"`
	PreferredAgeTo       string   `json:"preferredAgeTo"`
	JobPreference        string   `json:"jobPreference"`
	PartnerDiet          string   `json:"partnerDiet"`
	PartnerMaritalStatus []string `json:"partnerMaritalStatus"`
	PartnerCaste         string   `json:"partnerCaste"`
	PartnerSubCaste      string   `json:"partnerSubCaste"`
	PartnerComments      string   `json:"partnerComments"`

	// Additional details
	OtherDetails string `json:"otherDetails"`
	Description  string `json:"description"`

	// Images, already normalized to data URIs by the upload handler
	ProfileImage string `json:"profileImage"`

	// Account details
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
