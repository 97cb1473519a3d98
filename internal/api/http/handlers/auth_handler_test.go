package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/listing-auth/internal/api/http"
	"github.com/spec-kit/listing-auth/internal/api/http/handlers"
	"github.com/spec-kit/listing-auth/internal/config"
	"github.com/spec-kit/listing-auth/internal/domain"
	"github.com/spec-kit/listing-auth/internal/observability"
	"github.com/spec-kit/listing-auth/internal/repository"
	"github.com/spec-kit/listing-auth/internal/service"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*domain.User)}
}

func (m *memRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := m.users[key]; exists {
		return repository.ErrDuplicateEmail
	}
	user.ID = uuid.NewString()
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	m.users[key] = &stored
	return nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.HashMaxConcurrency = 4

	authService := service.NewAuthService(cfg, newMemRepo(), nil)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Auth:   handlers.NewAuthHandler(authService),
		Health: handlers.NewHealthHandler("test", "test", nil, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func validSignupPayload() map[string]any {
	return map[string]any{
		"name":          "John Doe",
		"email":         "john@example.com",
		"password":      "Password123",
		"termsAccepted": true,
	}
}

func TestSignup_Success(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "/signup", validSignupPayload())

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, "john@example.com", user["email"])
	assert.Equal(t, "John", user["firstName"])
	assert.Equal(t, "Doe", user["lastName"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestSignup_ValidationFailed(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "/signup", map[string]any{
		"name":          "",
		"email":         "not-an-email",
		"password":      "abc",
		"termsAccepted": false,
	})

	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 7)

	want := []map[string]any{
		{"field": "name", "message": "Name is required"},
		{"field": "name", "message": "Name must be at least 2 characters"},
		{"field": "name", "message": "Name must contain at least first and last name"},
		{"field": "email", "message": "Invalid email format"},
		{"field": "password", "message": "Password must be at least 8 characters"},
		{"field": "password", "message": "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
		{"field": "termsAccepted", "message": "You must accept the terms and conditions"},
	}
	for i, entry := range details {
		assert.Equal(t, want[i], entry, "detail %d", i)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "/signup", validSignupPayload())
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "/signup", validSignupPayload())
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"error": "User with this email already exists"}, body)
}

func TestLogin_RoundTrip(t *testing.T) {
	app := newTestApp(t)

	status, signupBody := doJSON(t, app, "/signup", validSignupPayload())
	require.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, signupBody["token"])

	status, body := doJSON(t, app, "/login", map[string]any{
		"email":    "john@example.com",
		"password": "Password123",
	})

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Login successful!", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "/signup", validSignupPayload())
	require.Equal(t, fiber.StatusCreated, status)

	unknownStatus, unknownBody := doJSON(t, app, "/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "Password123",
	})
	mismatchStatus, mismatchBody := doJSON(t, app, "/login", map[string]any{
		"email":    "john@example.com",
		"password": "WrongPassword1",
	})

	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)
	assert.Equal(t, unknownStatus, mismatchStatus)
	assert.Equal(t, map[string]any{"error": "Invalid credentials"}, unknownBody)
	assert.Equal(t, unknownBody, mismatchBody)
}

func TestLogin_MissingFieldsAreUnauthorized(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "/login", map[string]any{})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, map[string]any{"error": "Invalid credentials"}, body)
}

func TestSignup_InvalidJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/signup", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
