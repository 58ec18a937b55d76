package services

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][0-9A-Z]?\s?[0-9][A-Z]{2}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,18}$`)
)

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// ValidatePostcode validates a UK postcode such as "LS1 4AB" or "SW1A 1AA".
// The space between outward and inward codes is optional.
func ValidatePostcode(postcode string) bool {
	postcode = strings.TrimSpace(strings.ToUpper(postcode))
	if postcode == "" {
		return true
	}
	return postcodePattern.MatchString(postcode)
}

// ValidatePhone validates a phone number loosely: digits with optional
// leading +, spaces, hyphens and parentheses, 7 to 19 characters.
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}
