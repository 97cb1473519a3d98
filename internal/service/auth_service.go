package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/listing-auth/internal/auth"
	"github.com/spec-kit/listing-auth/internal/config"
	"github.com/spec-kit/listing-auth/internal/domain"
	"github.com/spec-kit/listing-auth/internal/events"
	"github.com/spec-kit/listing-auth/internal/repository"
)

var (
	// ErrEmailTaken signals a signup against an already-registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignupInput is the validated signup payload. TermsAccepted is true by the
// time it reaches the service; validation rejects everything else.
type SignupInput struct {
	Name          string
	Email         string
	Password      string
	TermsAccepted bool
	PhoneNumber   string
	About         string
}

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	hasher     *auth.Hasher
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     auth.NewHasher(cfg.Auth.BcryptCost, cfg.Auth.HashMaxConcurrency),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret),
		dispatcher: dispatcher,
	}
}

// Signup hashes the password, inserts the account and issues a token. There
// is no existence pre-check: the store's unique constraint decides, so two
// racing signups for one email cannot both create an account.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	firstName, lastName := domain.SplitName(in.Name)
	user := &domain.User{
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  hash,
		FirstName:     firstName,
		LastName:      lastName,
		PhoneNumber:   in.PhoneNumber,
		About:         in.About,
		TermsAccepted: in.TermsAccepted,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.publish(ctx, events.UserRegistered, user)
	return user, token, nil
}

// Login authenticates an account and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.publish(ctx, events.UserLoggedIn, user)
	return token, nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    eventType,
		Payload: events.AuthEventPayload{UserID: user.ID, Email: user.Email},
	})
}
