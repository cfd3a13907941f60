package rest

import "net/http"

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth      *AuthHandler
	Me        *MeHandler
	Entries   *EntriesHandler
	Calendar  *CalendarHandler
	Questions *QuestionsHandler
	Health    *HealthHandler
}

// NewRouter builds the API route table. The protect wrapper is applied to
// every route that requires an authenticated user; auth and health routes
// are mounted bare.
func NewRouter(h Handlers, protect func(http.Handler) http.Handler) *http.ServeMux {
	if protect == nil {
		protect = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, protect(fn))
	}

	// Health probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth.
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Profile.
	protected("GET /api/me", h.Me.Get)
	protected("PATCH /api/me", h.Me.Update)

	// Journal entries.
	protected("POST /api/entries", h.Entries.Create)
	protected("GET /api/entries", h.Entries.List)
	protected("DELETE /api/entries", h.Entries.DeleteByType)
	protected("POST /api/entries/game/complete", h.Entries.CompleteGame)
	protected("GET /api/entries/day/{date}", h.Entries.ListDay)
	protected("GET /api/entries/day/{date}/in-progress", h.Entries.InProgressGame)
	protected("GET /api/entries/{id}", h.Entries.Get)
	protected("PATCH /api/entries/{id}", h.Entries.Update)
	protected("DELETE /api/entries/{id}", h.Entries.Delete)

	// Calendar heat map.
	protected("GET /api/calendar/{year}/{month}", h.Calendar.Month)

	// Question configuration.
	protected("GET /api/questions/{activity}", h.Questions.Load)
	protected("PUT /api/questions/{activity}", h.Questions.Replace)
	protected("POST /api/questions/{activity}", h.Questions.AddCustom)
	protected("POST /api/questions/{activity}/reset", h.Questions.Reset)
	protected("DELETE /api/questions/{activity}/{id}", h.Questions.DeleteCustom)
	protected("GET /api/imagery-prompts", h.Questions.ImageryPrompts)
	protected("PUT /api/imagery-prompts", h.Questions.ReplaceImageryPrompts)

	return mux
}
