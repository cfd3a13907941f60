package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// questionsService defines the minimal interface needed by QuestionsHandler.
type questionsService interface {
	Load(ctx context.Context, userID uuid.UUID, activity domain.ActivityType) ([]domain.Question, error)
	Replace(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, qs []domain.Question) error
	AddCustom(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, text string, section domain.QuestionSection) (*domain.Question, error)
	DeleteCustom(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, id string) error
	Reset(ctx context.Context, userID uuid.UUID, activity domain.ActivityType) ([]domain.Question, error)
	ImageryPrompts(ctx context.Context, userID uuid.UUID) ([]domain.ImageryPrompt, error)
	ReplaceImageryPrompts(ctx context.Context, userID uuid.UUID, prompts []domain.ImageryPrompt) error
}

// QuestionsHandler serves question-configuration REST endpoints.
type QuestionsHandler struct {
	svc questionsService
	log *slog.Logger
}

// NewQuestionsHandler creates a QuestionsHandler.
func NewQuestionsHandler(svc questionsService, logger *slog.Logger) *QuestionsHandler {
	return &QuestionsHandler{svc: svc, log: logger.With("handler", "questions")}
}

type replaceQuestionsRequest struct {
	Questions []domain.Question `json:"questions"`
}

type addQuestionRequest struct {
	Text    string `json:"text"`
	Section string `json:"section"`
}

type questionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

type imageryPromptsRequest struct {
	Prompts []domain.ImageryPrompt `json:"prompts"`
}

type imageryPromptsResponse struct {
	Prompts []domain.ImageryPrompt `json:"prompts"`
}

// Load handles GET /api/questions/{activity}.
func (h *QuestionsHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID, activity, ok := h.requireUserAndActivity(w, r)
	if !ok {
		return
	}

	qs, err := h.svc.Load(r.Context(), userID, activity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{Questions: qs})
}

// Replace handles PUT /api/questions/{activity}.
func (h *QuestionsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID, activity, ok := h.requireUserAndActivity(w, r)
	if !ok {
		return
	}

	var req replaceQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Replace(r.Context(), userID, activity, req.Questions); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{Questions: req.Questions})
}

// AddCustom handles POST /api/questions/{activity}.
func (h *QuestionsHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	userID, activity, ok := h.requireUserAndActivity(w, r)
	if !ok {
		return
	}

	var req addQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.svc.AddCustom(r.Context(), userID, activity, req.Text, domain.QuestionSection(req.Section))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

// DeleteCustom handles DELETE /api/questions/{activity}/{id}.
func (h *QuestionsHandler) DeleteCustom(w http.ResponseWriter, r *http.Request) {
	userID, activity, ok := h.requireUserAndActivity(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCustom(r.Context(), userID, activity, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /api/questions/{activity}/reset.
func (h *QuestionsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, activity, ok := h.requireUserAndActivity(w, r)
	if !ok {
		return
	}

	qs, err := h.svc.Reset(r.Context(), userID, activity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{Questions: qs})
}

// ImageryPrompts handles GET /api/imagery-prompts.
func (h *QuestionsHandler) ImageryPrompts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	prompts, err := h.svc.ImageryPrompts(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageryPromptsResponse{Prompts: prompts})
}

// ReplaceImageryPrompts handles PUT /api/imagery-prompts.
func (h *QuestionsHandler) ReplaceImageryPrompts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req imageryPromptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.ReplaceImageryPrompts(r.Context(), userID, req.Prompts); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageryPromptsResponse{Prompts: req.Prompts})
}

func (h *QuestionsHandler) requireUserAndActivity(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.ActivityType, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return uuid.Nil, "", false
	}

	activity, ok := parseActivity(r.PathValue("activity"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown activity type")
		return uuid.Nil, "", false
	}

	return userID, activity, true
}

func (h *QuestionsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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
