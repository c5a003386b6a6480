package regform

import "time"

// TotalSteps is the number of form steps.
const TotalSteps = 7

// Step numbers in form order.
const (
	StepPersonal = 1
	StepFamily   = 2
	StepPhysical = 3
	StepContact  = 4
	StepAstro    = 5
	StepPartner  = 6
	StepAccount  = 7
)

// Code classifies a validation failure.
type Code string

const (
	CodeMissingFields Code = "missing_fields"
	CodeInvalidFormat Code = "invalid_format"
	CodeBusinessRule  Code = "business_rule"
)

// ValidationError reports the first failure found in a step. It never panics
// a request; controllers map it to a 422 response.
type ValidationError struct {
	Step    int      `json:"step"`
	Code    Code     `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

const msgMissingFields = "Please fill in all required fields marked with * before proceeding."

// ValidateStep checks a single step of the draft and returns nil when the
// step passes. Steps 3, 5 and 6 carry no required fields and always pass.
// Within a step the checks run in a fixed order and the first failure wins.
func ValidateStep(step int, d *Draft, today time.Time) *ValidationError {
	switch step {
	case StepPersonal:
		missing := missingFields([][2]string{
			{"name", d.Name},
			{"gender", d.Gender},
			{"dateOfBirth", d.DateOfBirth},
			{"motherTongue", d.MotherTongue},
			{"maritalStatus", d.MaritalStatus},
			{"religion", d.Religion},
		})
		if len(missing) > 0 {
			return &ValidationError{Step: step, Code: CodeMissingFields, Message: msgMissingFields, Fields: missing}
		}
		if !MatchesDateFormat(d.DateOfBirth) {
			return &ValidationError{
				Step: step, Code: CodeInvalidFormat,
				Message: "Please enter date in DD-MM-YYYY format (e.g., 15-08-1990).",
				Fields:  []string{"dateOfBirth"},
			}
		}
		age, err := CalculateAge(d.DateOfBirth, today)
		if err != nil {
			return &ValidationError{
				Step: step, Code: CodeInvalidFormat,
				Message: "Please enter a valid date of birth.",
				Fields:  []string{"dateOfBirth"},
			}
		}
		if age < 18 {
			return &ValidationError{
				Step: step, Code: CodeBusinessRule,
				Message: "You must be at least 18 years old to register.",
				Fields:  []string{"dateOfBirth"},
			}
		}

	case StepFamily:
		missing := missingFields([][2]string{
			{"fatherName", d.FatherName},
			{"fatherAlive", d.FatherAlive},
			{"motherName", d.MotherName},
			{"motherAlive", d.MotherAlive},
		})
		if len(missing) > 0 {
			return &ValidationError{Step: step, Code: CodeMissingFields, Message: msgMissingFields, Fields: missing}
		}

	case StepContact:
		missing := missingFields([][2]string{
			{"presentAddress", d.PresentAddress},
			{"contactNumber", d.ContactNumber},
		})
		if len(missing) > 0 {
			return &ValidationError{Step: step, Code: CodeMissingFields, Message: msgMissingFields, Fields: missing}
		}

	case StepAccount:
		missing := missingFields([][2]string{
			{"email", d.Email},
			{"password", d.Password},
			{"confirmPassword", d.ConfirmPassword},
		})
		if len(missing) > 0 {
			return &ValidationError{Step: step, Code: CodeMissingFields, Message: msgMissingFields, Fields: missing}
		}
		if d.Password != d.ConfirmPassword {
			return &ValidationError{
				Step: step, Code: CodeBusinessRule,
				Message: "Password and confirm password must be the same.",
				Fields:  []string{"confirmPassword"},
			}
		}
		if len(d.Password) < 6 {
			return &ValidationError{
				Step: step, Code: CodeBusinessRule,
				Message: "Password must be at least 6 characters long.",
				Fields:  []string{"password"},
			}
		}
	}

	return nil
}

// ValidateAll runs every step in order and returns the first failure, so a
// draft that passes has satisfied all seven steps.
func ValidateAll(d *Draft, today time.Time) *ValidationError {
	for step := 1; step <= TotalSteps; step++ {
		if err := ValidateStep(step, d, today); err != nil {
			return err
		}
	}
	return nil
}

func missingFields(checks [][2]string) []string {
	var missing []string
	for _, check := range checks {
		if check[1] == "" {
			missing = append(missing, check[0])
		}
	}
	return missing
}
