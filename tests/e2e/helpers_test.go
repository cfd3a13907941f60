//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/athletemind/journal-backend/internal/adapter/postgres"
	entryrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/entry"
	"github.com/athletemind/journal-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/token"
	userrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/user"
	"github.com/athletemind/journal-backend/internal/adapter/postgres/userconfig"
	authpkg "github.com/athletemind/journal-backend/internal/auth"
	"github.com/athletemind/journal-backend/internal/config"
	authsvc "github.com/athletemind/journal-backend/internal/service/auth"
	"github.com/athletemind/journal-backend/internal/service/calendar"
	"github.com/athletemind/journal-backend/internal/service/journal"
	"github.com/athletemind/journal-backend/internal/service/questions"
	usersvc "github.com/athletemind/journal-backend/internal/service/user"
	"github.com/athletemind/journal-backend/internal/transport/middleware"
	"github.com/athletemind/journal-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	entries := entryrepo.New(pool)
	configs := userconfig.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
	journalCfg := config.JournalConfig{
		MaxContentBytes:   65536,
		MaxCustomPrompts:  50,
		MaxImageryPrompts: 50,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users)
	journalService := journal.NewService(logger, entries, txm, journalCfg)
	calendarService := calendar.NewService(logger, entries)
	questionsService := questions.NewService(logger, configs, journalCfg)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Me:        rest.NewMeHandler(userService, logger),
		Entries:   rest.NewEntriesHandler(journalService, logger),
		Calendar:  rest.NewCalendarHandler(calendarService, logger),
		Questions: rest.NewQuestionsHandler(questionsService, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(authService),
	)

	router := rest.NewRouter(handlers, middleware.RequireAuth)

	srv := httptest.NewServer(chain(router))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Some endpoints return arrays; wrap them for uniform access.
		var list []any
		require.NoError(t, json.Unmarshal(raw, &list), "body: %s", raw)
		return resp.StatusCode, map[string]any{"items": list}
	}
	return resp.StatusCode, decoded
}

// registerUser registers a fresh user and returns its access token.
func (ts *testServer) registerUser(t *testing.T) string {
	t.Helper()

	email := fmt.Sprintf("athlete-%d@example.com", time.Now().UnixNano())
	status, resp := ts.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": "correct-horse-battery",
		"name":     "E2E Athlete",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register response: %v", resp)

	token, ok := resp["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")
	require.NotEmpty(t, token)
	return token
}
