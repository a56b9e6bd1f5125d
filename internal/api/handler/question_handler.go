package handler

import (
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/tracker"

	"github.com/go-chi/chi/v5"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	guard           Middleware
}

func NewQuestionHandler(qs *service.QuestionService, guard Middleware) *QuestionHandler {
	return &QuestionHandler{questionService: qs, guard: orPassThrough(guard)}
}

func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listQuestions) // GET /api/v1/questions?q=&platform=&difficulty=&status=

	r.Group(func(owner chi.Router) {
		owner.Use(h.guard)
		owner.Post("/{questionID}/toggle", h.toggleQuestion)
	})
}

func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	f, err := parseQuestionFilter(r)
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	res, err := h.questionService.Filter(r.Context(), f)
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, res)
}

func (h *QuestionHandler) toggleQuestion(w http.ResponseWriter, r *http.Request) {
	res, err := h.questionService.Toggle(r.Context(), chi.URLParam(r, "questionID"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, res)
}

func parseQuestionFilter(r *http.Request) (tracker.QuestionFilter, error) {
	q := r.URL.Query()
	f := tracker.QuestionFilter{Search: q.Get("q")}

	var err error
	if f.Platform, err = tracker.ParsePlatformChoice(q.Get("platform")); err != nil {
		return f, err
	}
	if f.Difficulty, err = tracker.ParseDifficultyChoice(q.Get("difficulty")); err != nil {
		return f, err
	}
	if f.Completed, err = tracker.ParseStatus(q.Get("status")); err != nil {
		return f, err
	}
	return f, nil
}
