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
)

type meServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, name string) (*domain.User, error)
}

func (m *meServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	return m.GetProfileFunc(ctx)
}

func (m *meServiceMock) UpdateProfile(ctx context.Context, name string) (*domain.User, error) {
	return m.UpdateProfileFunc(ctx, name)
}

func TestMeGet_OK(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &meServiceMock{
		GetProfileFunc: func(_ context.Context) (*domain.User, error) {
			return &domain.User{
				ID:        userID,
				Email:     "athlete@example.com",
				Name:      "Alex",
				CreatedAt: time.Now(),
			}, nil
		},
	}
	h := NewMeHandler(svc, slog.New(slog.DiscardHandler))

	req := authedRequest(http.MethodGet, "/api/me", "", userID)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Email != "athlete@example.com" {
		t.Errorf("unexpected email %q", resp.Email)
	}
}

func TestMeGet_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &meServiceMock{
		GetProfileFunc: func(_ context.Context) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewMeHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestMeUpdate_OK(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &meServiceMock{
		UpdateProfileFunc: func(_ context.Context, name string) (*domain.User, error) {
			if name != "Jordan" {
				t.Errorf("unexpected name %q", name)
			}
			return &domain.User{ID: userID, Email: "athlete@example.com", Name: name}, nil
		},
	}
	h := NewMeHandler(svc, slog.New(slog.DiscardHandler))

	req := authedRequest(http.MethodPatch, "/api/me", `{"name":"Jordan"}`, userID)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Jordan" {
		t.Errorf("unexpected name %q", resp.Name)
	}
}

func TestMeUpdate_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &meServiceMock{
		UpdateProfileFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.NewValidationError("name", "is required")
		},
	}
	h := NewMeHandler(svc, slog.New(slog.DiscardHandler))

	req := authedRequest(http.MethodPatch, "/api/me", `{"name":""}`, uuid.New())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name") {
		t.Errorf("expected field name in body, got %s", rec.Body.String())
	}
}
