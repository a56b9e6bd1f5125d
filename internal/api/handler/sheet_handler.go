package handler

import (
	"encoding/json"
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/tracker"

	"github.com/go-chi/chi/v5"
)

type SheetHandler struct {
	sheetService *service.SheetService
	guard        Middleware
}

func NewSheetHandler(ss *service.SheetService, guard Middleware) *SheetHandler {
	return &SheetHandler{sheetService: ss, guard: orPassThrough(guard)}
}

type setQuestionsRequest struct {
	Questions []string `json:"questions"`
}

func (h *SheetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listSheets)
	r.Get("/{sheetID}", h.getSheet) // id or slug

	r.Group(func(owner chi.Router) {
		owner.Use(h.guard)
		owner.Post("/", h.createSheet)
		owner.Put("/{sheetID}/questions", h.setQuestions)
		owner.Post("/{sheetID}/duplicate", h.duplicateSheet)
		owner.Delete("/{sheetID}", h.deleteSheet)
	})
}

func (h *SheetHandler) listSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.sheetService.List(r.Context())
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, sheets)
}

func (h *SheetHandler) getSheet(w http.ResponseWriter, r *http.Request) {
	detail, err := h.sheetService.Get(r.Context(), chi.URLParam(r, "sheetID"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *SheetHandler) createSheet(w http.ResponseWriter, r *http.Request) {
	var req tracker.NewSheetInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	sheet, err := h.sheetService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, sheet)
}

func (h *SheetHandler) setQuestions(w http.ResponseWriter, r *http.Request) {
	var req setQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	view, err := h.sheetService.SetQuestions(r.Context(), chi.URLParam(r, "sheetID"), req.Questions)
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, view)
}

func (h *SheetHandler) duplicateSheet(w http.ResponseWriter, r *http.Request) {
	res, err := h.sheetService.Duplicate(r.Context(), chi.URLParam(r, "sheetID"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	code := http.StatusOK
	if res.Changed {
		code = http.StatusCreated
	}
	common.RespondWithJSON(w, code, res)
}

func (h *SheetHandler) deleteSheet(w http.ResponseWriter, r *http.Request) {
	res, err := h.sheetService.Delete(r.Context(), chi.URLParam(r, "sheetID"))
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, res)
}
