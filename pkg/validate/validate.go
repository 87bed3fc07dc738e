// Package validate implements the input validation rules applied by every
// interactive prompt. Rules form a closed enumeration so a prompt cannot
// request a rule that does not exist.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onestop-insurance/onestop/pkg/constants"
)

// Rule identifies one validation rule.
type Rule int

// The complete rule set. Composite validation applies rules in order and
// short-circuits on the first failure.
const (
	// NotBlank only requires non-blank input, which Check enforces for
	// every rule set anyway.
	NotBlank Rule = iota

	// Name restricts input to letters, hyphen, period, apostrophe, and space.
	Name

	// PhoneNumber requires exactly ten digits.
	PhoneNumber

	// PostalCode requires six characters beginning letter-digit.
	PostalCode

	// Province requires one of the recognized two-letter codes.
	Province

	// YesNo requires Y or N, case-insensitive.
	YesNo

	// PositiveInteger requires an all-digit string with value > 0.
	PositiveInteger

	// PositiveAmount requires a parseable number with value > 0.
	PositiveAmount

	// Day requires an integer in 1-31.
	Day

	// Month requires an integer in 1-12.
	Month

	// Year requires an integer in 1900-2150.
	Year

	// MaxNameLength caps input at 14 characters.
	MaxNameLength

	// MaxShortLength caps input at 5 characters.
	MaxShortLength
)

const allowedNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-.' "

// Check trims the input and applies the given rules in order. The first
// failing rule stops evaluation and its message is returned. Blank input
// fails regardless of which rules were requested.
func Check(input string, rules ...Rule) (bool, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false, "Input cannot be blank."
	}
	for _, rule := range rules {
		if ok, msg := apply(input, rule); !ok {
			return false, msg
		}
	}
	return true, "Valid input."
}

func apply(input string, rule Rule) (bool, string) {
	switch rule {
	case NotBlank:
		// Blank input was already rejected by Check.
		return true, ""
	case Name:
		for _, r := range input {
			if !strings.ContainsRune(allowedNameChars, r) {
				return false, "Invalid name. Please use only allowed characters."
			}
		}
	case PhoneNumber:
		if len(input) != constants.PhoneNumberLength || !allDigits(input) {
			return false, "Invalid phone number. Please enter a 10-digit numeric phone number."
		}
	case PostalCode:
		if len(input) != constants.PostalCodeLength || !isLetter(input[0]) || !isDigit(input[1]) {
			return false, "Invalid postal code format."
		}
	case Province:
		if !isProvince(input) {
			return false, "Invalid province. Please enter a valid abbreviation."
		}
	case YesNo:
		switch strings.ToUpper(input) {
		case "Y", "N":
		default:
			return false, "Data Entry Error - Answer Yes or No by typing Y or N."
		}
	case PositiveInteger:
		if n, err := strconv.Atoi(input); err != nil || !allDigits(input) || n <= 0 {
			return false, "Invalid input. Please enter a positive integer."
		}
	case PositiveAmount:
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return false, "Invalid input. Please enter a valid number."
		}
		if v <= 0 {
			return false, "Value must be a positive amount."
		}
	case Day:
		return boundedInt(input, 1, 31, "day")
	case Month:
		return boundedInt(input, 1, 12, "month")
	case Year:
		return boundedInt(input, constants.MinClaimYear, constants.MaxClaimYear, "year")
	case MaxNameLength:
		if len(input) > constants.MaxNameLength {
			return false, fmt.Sprintf("Input exceeds the maximum allowed length of %d characters.", constants.MaxNameLength)
		}
	case MaxShortLength:
		if len(input) > constants.MaxShortLength {
			return false, fmt.Sprintf("Input exceeds the maximum allowed length of %d characters.", constants.MaxShortLength)
		}
	}
	return true, ""
}

func boundedInt(input string, min, max int, unit string) (bool, string) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return false, fmt.Sprintf("Invalid %s. Please enter a numeric value.", unit)
	}
	if n < min || n > max {
		return false, fmt.Sprintf("Invalid %s. Please enter a value between %d and %d.", unit, min, max)
	}
	return true, ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isProvince(s string) bool {
	for _, p := range constants.Provinces {
		if strings.EqualFold(s, p) {
			return true
		}
	}
	return false
}
