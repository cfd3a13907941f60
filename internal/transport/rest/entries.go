package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
	"github.com/athletemind/journal-backend/internal/service/journal"
	"github.com/athletemind/journal-backend/pkg/ctxutil"
)

// journalService defines the minimal interface needed by EntriesHandler.
type journalService interface {
	Create(ctx context.Context, userID uuid.UUID, input journal.CreateEntryInput) (*domain.JournalEntry, error)
	CompleteGame(ctx context.Context, userID uuid.UUID, input journal.CompleteGameInput) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error)
	ListDay(ctx context.Context, userID uuid.UUID, day string) ([]domain.JournalEntry, error)
	InProgressGame(ctx context.Context, userID uuid.UUID, day string) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]domain.JournalEntry, error)
	UpdateContent(ctx context.Context, userID uuid.UUID, input journal.UpdateContentInput) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType) (int, error)
}

// EntriesHandler serves journal entry REST endpoints.
type EntriesHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntriesHandler creates an EntriesHandler.
func NewEntriesHandler(svc journalService, logger *slog.Logger) *EntriesHandler {
	return &EntriesHandler{svc: svc, log: logger.With("handler", "entries")}
}

type createEntryRequest struct {
	Type    string         `json:"type"`
	Day     string         `json:"day"`
	Date    string         `json:"date"`
	Content map[string]any `json:"content"`
}

type completeGameRequest struct {
	Day     string         `json:"day"`
	Date    string         `json:"date"`
	Content map[string]any `json:"content"`
}

type updateEntryRequest struct {
	Content map[string]any `json:"content"`
}

type entryResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Date      string         `json:"date"`
	Timestamp string         `json:"timestamp"`
	Content   map[string]any `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Create handles POST /api/entries.
func (h *EntriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typ, ok := parseActivity(req.Type)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown activity type")
		return
	}

	entry, err := h.svc.Create(r.Context(), userID, journal.CreateEntryInput{
		Type:    typ,
		Day:     req.Day,
		Date:    req.Date,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// CompleteGame handles POST /api/entries/game/complete.
func (h *EntriesHandler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req completeGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CompleteGame(r.Context(), userID, journal.CompleteGameInput{
		Day:     req.Day,
		Date:    req.Date,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Get handles GET /api/entries/{id}.
func (h *EntriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.GetByID(r.Context(), userID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /api/entries with optional type/from/to/limit/offset
// query parameters.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var f domain.EntryFilter
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		typ, ok := parseActivity(v)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown activity type")
			return
		}
		f.Type = &typ
	}
	f.FromTimestamp = q.Get("from")
	f.ToTimestamp = q.Get("to")
	if v := q.Get("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}

	entries, err := h.svc.List(r.Context(), userID, f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListDay handles GET /api/entries/day/{date}.
func (h *EntriesHandler) ListDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListDay(r.Context(), userID, r.PathValue("date"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// InProgressGame handles GET /api/entries/day/{date}/in-progress.
func (h *EntriesHandler) InProgressGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.InProgressGame(r.Context(), userID, r.PathValue("date"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PATCH /api/entries/{id}.
func (h *EntriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateContent(r.Context(), userID, journal.UpdateContentInput{
		ID:      id,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteByType handles DELETE /api/entries?type=.
func (h *EntriesHandler) DeleteByType(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	typ, ok := parseActivity(r.URL.Query().Get("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown activity type")
		return
	}

	count, err := h.svc.DeleteByType(r.Context(), userID, typ)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": count})
}

func (h *EntriesHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireUser extracts the authenticated user from the request context,
// writing a 401 response when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// parseActivity matches an activity type case-insensitively.
func parseActivity(s string) (domain.ActivityType, bool) {
	for _, t := range []domain.ActivityType{
		domain.ActivityTraining,
		domain.ActivityGame,
		domain.ActivityRehab,
		domain.ActivityLift,
		domain.ActivityImagery,
		domain.ActivityFood,
	} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	return entryResponse{
		ID:        e.ID.String(),
		Type:      e.Type.String(),
		Date:      e.Date,
		Timestamp: e.Timestamp,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.JournalEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}
