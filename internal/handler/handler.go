// Package handler exposes the tutoring and exam engine as a JSON API, one
// endpoint per host round trip. The handler holds no per-request state; the
// current view is re-derived from the session on every call.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Carlo1027/first-chatbot/internal/exam"
	"github.com/Carlo1027/first-chatbot/internal/export"
	"github.com/Carlo1027/first-chatbot/internal/llm"
	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
	"github.com/Carlo1027/first-chatbot/internal/session"
	"github.com/Carlo1027/first-chatbot/internal/tutor"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	tutor     *tutor.Tutor
	assembler *exam.Assembler
	grader    *exam.Grader
	sessions  *session.Registry
	config    model.ExamConfig
}

// New creates a new Handler backed by the given generation capability.
func New(gen llm.Generator, cfg model.ExamConfig) *Handler {
	lang := prompts.Normalize(cfg.Lang)
	return &Handler{
		tutor: tutor.New(gen, lang),
		assembler: exam.NewAssembler(gen, exam.AssemblerConfig{
			TargetCount: cfg.NumQuestions,
			MaxAttempts: cfg.MaxAttempts,
			Lang:        lang,
		}),
		grader:   exam.NewGrader(gen, lang),
		sessions: session.NewRegistry(),
		config:   cfg,
	}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/topics", h.handleTopics)
	r.Post("/api/explain", h.handleExplain)
	r.Post("/api/exercise", h.handleExercise)
	r.Post("/api/evaluate", h.handleEvaluate)
	r.Post("/api/exam", h.handleStartExam)
	r.Get("/api/exam/{sessionID}", h.handleExamState)
	r.Post("/api/exam/{sessionID}/answer", h.handleAnswer)
	r.Post("/api/exam/{sessionID}/reset", h.handleReset)
	r.Get("/api/exam/{sessionID}/export/results.xlsx", h.handleExportXLSX)
	r.Get("/api/exam/{sessionID}/export/report.pdf", h.handleExportPDF)
}

// questionView is the student-facing view of the current question. The
// answer key is deliberately absent.
type questionView struct {
	Index      int               `json:"index"`
	Total      int               `json:"total"`
	Prompt     string            `json:"prompt"`
	Options    map[string]string `json:"options"`
	Difficulty model.Difficulty  `json:"difficulty"`
}

// sessionView is the full state view returned after every exam round trip.
type sessionView struct {
	SessionID string               `json:"session_id"`
	Phase     model.Phase          `json:"phase"`
	Topic     string               `json:"topic,omitempty"`
	Question  *questionView        `json:"question,omitempty"`
	Correct   int                  `json:"correct"`
	Answered  int                  `json:"answered"`
	Results   []model.AnswerRecord `json:"results,omitempty"`
}

func viewOf(id string, s *exam.Session) sessionView {
	correct, answered := s.Score()
	v := sessionView{
		SessionID: id,
		Phase:     s.Phase,
		Topic:     s.Topic,
		Correct:   correct,
		Answered:  answered,
	}
	if q, err := s.CurrentQuestion(); err == nil {
		v.Question = &questionView{
			Index:      s.Current,
			Total:      len(s.Questions),
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		}
	}
	if s.Phase == model.PhaseFinished {
		v.Results = s.Results
	}
	return v
}

func (h *Handler) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"topics": h.config.Topics})
}

func (h *Handler) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}
	text, err := h.tutor.ExplainConcept(r.Context(), req.Topic)
	if err != nil {
		slog.Error("explain failed", "topic", req.Topic, "error", err)
		http.Error(w, "generation failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *Handler) handleExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
	}
	if !decode(w, r, &req) {
		return
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil || req.Topic == "" {
		http.Error(w, "topic and a valid difficulty are required", http.StatusBadRequest)
		return
	}
	text, err := h.tutor.ProposeExercise(r.Context(), req.Topic, difficulty)
	if err != nil {
		slog.Error("exercise failed", "topic", req.Topic, "error", err)
		http.Error(w, "generation failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercise string `json:"exercise"`
		Answer   string `json:"answer"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Exercise == "" || req.Answer == "" {
		http.Error(w, "exercise and answer are required", http.StatusBadRequest)
		return
	}
	text, err := h.tutor.EvaluateAnswer(r.Context(), req.Exercise, req.Answer)
	if err != nil {
		slog.Error("evaluate failed", "error", err)
		http.Error(w, "generation failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": text})
}

func (h *Handler) handleStartExam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
	}
	if !decode(w, r, &req) {
		return
	}
	pool, err := model.DifficultyPool(req.Difficulty)
	if err != nil || req.Topic == "" {
		http.Error(w, "topic and a valid difficulty are required", http.StatusBadRequest)
		return
	}

	bank, err := h.assembler.Build(r.Context(), req.Topic, pool)
	if err != nil {
		slog.Error("bank assembly aborted", "topic", req.Topic, "error", err)
		http.Error(w, "question generation failed", http.StatusBadGateway)
		return
	}

	id, sess := h.sessions.Create()
	if err := sess.Start(req.Topic, bank); err != nil {
		h.sessions.Delete(id)
		if errors.Is(err, exam.ErrEmptyBank) {
			http.Error(w, "no usable questions could be generated", http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("exam started", "session_id", id, "topic", req.Topic, "questions", len(bank))
	writeJSON(w, http.StatusCreated, viewOf(id, sess))
}

func (h *Handler) handleExamState(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(id, sess))
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Index    int    `json:"index"`
		Selected string `json:"selected"`
	}
	if !decode(w, r, &req) {
		return
	}

	q, err := sess.CurrentQuestion()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if _, ok := q.Options[req.Selected]; !ok {
		http.Error(w, "selected label is not one of the options", http.StatusBadRequest)
		return
	}
	if req.Index != sess.Current {
		// Detect stale submissions before spending a feedback call on them.
		http.Error(w, "answer does not match the current question", http.StatusConflict)
		return
	}

	rec := h.grader.Grade(r.Context(), q, req.Selected)
	if err := sess.RecordAnswer(req.Index, rec); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		IsCorrect    bool        `json:"is_correct"`
		CorrectLabel string      `json:"correct_label"`
		Feedback     string      `json:"feedback,omitempty"`
		State        sessionView `json:"state"`
	}{
		IsCorrect:    rec.IsCorrect,
		CorrectLabel: q.CorrectLabel,
		Feedback:     rec.Feedback,
		State:        viewOf(id, sess),
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Reset()
	writeJSON(w, http.StatusOK, viewOf(id, sess))
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.Workbook)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, ".pdf", "application/pdf", export.PDF)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, ext, contentType string,
	render func(ctx context.Context, results []model.AnswerRecord, id export.Identity) ([]byte, error),
) {
	_, sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if sess.Phase != model.PhaseFinished {
		http.Error(w, "exam is not finished", http.StatusConflict)
		return
	}
	identity := export.Identity{
		Name:    r.URL.Query().Get("name"),
		Contact: r.URL.Query().Get("contact"),
	}
	if identity.Name == "" || identity.Contact == "" {
		http.Error(w, "name and contact are required", http.StatusBadRequest)
		return
	}

	data, err := render(r.Context(), sess.Results, identity)
	if err != nil {
		slog.Error("export failed", "ext", ext, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(r.Context(), identity, ext)+`"`)
	_, _ = w.Write(data)
}

// session resolves the sessionID URL parameter against the registry.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, *exam.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := h.sessions.Get(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return "", nil, false
	}
	return id, sess, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
