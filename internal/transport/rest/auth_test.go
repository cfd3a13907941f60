package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
	"github.com/athletemind/journal-backend/internal/service/auth"
)

type authServiceMock struct {
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc       func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc        func(ctx context.Context) error
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	return m.LogoutFunc(ctx)
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	return m.ValidateTokenFunc(ctx, token)
}

func testAuthResult(userID uuid.UUID) *auth.AuthResult {
	return &auth.AuthResult{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: &domain.User{
			ID:        userID,
			Email:     "athlete@example.com",
			Name:      "Alex",
			CreatedAt: time.Now(),
		},
	}
}

func TestAuthRegister_Created(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var got auth.RegisterInput
	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			got = input
			return testAuthResult(userID), nil
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"email":"athlete@example.com","password":"hunter2hunter2","name":"Alex"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Email != "athlete@example.com" || got.Name != "Alex" {
		t.Errorf("unexpected register input: %+v", got)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "access-token" {
		t.Errorf("expected access token, got %q", resp.AccessToken)
	}
	if resp.User.ID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, resp.User.ID)
	}
}

func TestAuthRegister_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthRegister_Conflict(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, _ auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"email":"athlete@example.com","password":"hunter2hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestAuthRegister_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(_ context.Context, _ auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"email":"athlete@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password") {
		t.Errorf("expected field name in error body, got %s", rec.Body.String())
	}
}

func TestAuthLogin_OK(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			if input.Email != "athlete@example.com" {
				t.Errorf("unexpected email %q", input.Email)
			}
			return testAuthResult(uuid.New()), nil
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"email":"athlete@example.com","password":"hunter2hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, _ auth.LoginInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"email":"athlete@example.com","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthRefresh_OK(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RefreshFunc: func(_ context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
			if input.RefreshToken != "old-refresh" {
				t.Errorf("unexpected refresh token %q", input.RefreshToken)
			}
			return testAuthResult(uuid.New()), nil
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	body := `{"refreshToken":"old-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthLogout_OK(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	loggedOut := false
	svc := &authServiceMock{
		ValidateTokenFunc: func(_ context.Context, token string) (uuid.UUID, error) {
			if token != "valid-token" {
				t.Errorf("unexpected token %q", token)
			}
			return userID, nil
		},
		LogoutFunc: func(_ context.Context) error {
			loggedOut = true
			return nil
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !loggedOut {
		t.Error("expected Logout to be called")
	}
}

func TestAuthLogout_MissingToken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthLogout_InvalidToken(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		ValidateTokenFunc: func(_ context.Context, _ string) (uuid.UUID, error) {
			return uuid.Nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
