package domain

import (
	"strings"
	"time"
)

// User is the domain model for site accounts. PasswordHash is the only form
// the password ever takes past the service boundary. FirstName and LastName
// are derived from Name at signup and are not independently authoritative.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	PhoneNumber   string
	About         string
	TermsAccepted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SplitName derives firstName/lastName from a display name: trim, split on
// runs of whitespace, first token becomes firstName, the remaining tokens
// joined by single spaces become lastName.
func SplitName(name string) (firstName, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
