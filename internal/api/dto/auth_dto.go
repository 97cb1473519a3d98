package dto

import "github.com/spec-kit/listing-auth/internal/domain"

// LoginRequest payload for login. Login has no schema validation; missing
// or empty fields simply fail the credential check.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the account projection returned on signup. The password hash
// never leaves the service.
type UserView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	About       string `json:"about,omitempty"`
}

// SignupResponse is the 201 body for a successful registration.
type SignupResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// LoginResponse is the 200 body for a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// NewUserView projects a domain user for the response body.
func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		About:       u.About,
	}
}
