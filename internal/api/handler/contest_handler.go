package handler

import (
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type ContestHandler struct {
	contestService *service.ContestService
	guard          Middleware
}

func NewContestHandler(cs *service.ContestService, guard Middleware) *ContestHandler {
	return &ContestHandler{contestService: cs, guard: orPassThrough(guard)}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listContests) // GET /api/v1/contests?view=all|registered

	r.Group(func(owner chi.Router) {
		owner.Use(h.guard)
		owner.Post("/{contestID}/toggle-registration", h.toggleRegistration)
	})
}

func (h *ContestHandler) listContests(w http.ResponseWriter, r *http.Request) {
	view, err := service.ParseContestView(r.URL.Query().Get("view"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	listing, err := h.contestService.Grouped(r.Context(), view)
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, listing)
}

func (h *ContestHandler) toggleRegistration(w http.ResponseWriter, r *http.Request) {
	res, err := h.contestService.ToggleRegistration(r.Context(), chi.URLParam(r, "contestID"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, res)
}
