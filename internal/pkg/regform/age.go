package regform

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dateOfBirthPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// MatchesDateFormat reports whether the value has the DD-MM-YYYY shape. It
// checks shape only; CalculateAge decides whether the date itself is usable.
func MatchesDateFormat(value string) bool {
	return dateOfBirthPattern.MatchString(value)
}

var errInvalidDate = errors.New("regform: invalid date of birth")

// CalculateAge computes full calendar years between a DD-MM-YYYY date of
// birth and the reference date. Out-of-range day or month values are
// normalized forward the way time.Date does (32-01 becomes 01-02). Future
// dates return an error.
func CalculateAge(dateOfBirth string, today time.Time) (int, error) {
	parts := strings.Split(dateOfBirth, "-")
	if len(parts) != 3 {
		return 0, errInvalidDate
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errInvalidDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errInvalidDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, errInvalidDate
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, errInvalidDate
	}
	return age, nil
}
