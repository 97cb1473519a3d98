package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

// SignupSchema is the signup form contract. Field order and per-field rule
// order determine the order of reported violations.
var SignupSchema = Schema{
	{
		Name: "name",
		Kind: String,
		Rules: []Rule{
			Required("Name is required"),
			MinLength(2, "Name must be at least 2 characters"),
			MaxLength(100, "Name must be less than 100 characters"),
			Custom(hasFirstAndLastName, "Name must contain at least first and last name"),
		},
	},
	{
		Name: "email",
		Kind: String,
		Rules: []Rule{
			Required("Email is required"),
			Pattern(emailPattern, "Invalid email format"),
		},
	},
	{
		Name: "password",
		Kind: String,
		Rules: []Rule{
			Required("Password is required"),
			MinLength(8, "Password must be at least 8 characters"),
			Custom(hasPasswordComplexity, "Password must contain at least one uppercase letter, one lowercase letter, and one number"),
		},
	},
	{
		Name: "termsAccepted",
		Kind: Bool,
		Rules: []Rule{
			Required("Terms acceptance is required"),
			MustBeTrue("You must accept the terms and conditions"),
		},
	},
	{
		Name:     "phoneNumber",
		Kind:     String,
		Optional: true,
		Rules: []Rule{
			Pattern(phonePattern, "Invalid phone number format"),
		},
	},
	{
		Name:     "about",
		Kind:     String,
		Optional: true,
		Rules: []Rule{
			MaxLength(1000, "About section must be less than 1000 characters"),
		},
	},
}

// hasFirstAndLastName requires at least two whitespace-separated tokens of
// two or more runes each. Unlike the length rules it also rejects an absent
// value, so an empty name reports required, minimum-length, and name-format
// violations together.
func hasFirstAndLastName(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if utf8.RuneCountInString(part) < 2 {
			return false
		}
	}
	return true
}

// hasPasswordComplexity requires one lowercase letter, one uppercase letter
// and one digit, in any positions. Absent values pass; Required reports
// those.
func hasPasswordComplexity(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
