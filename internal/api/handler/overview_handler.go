package handler

import (
	"net/http"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type OverviewHandler struct {
	overviewService *service.OverviewService
}

func NewOverviewHandler(ovs *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: ovs}
}

func (h *OverviewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getOverview)
}

func (h *OverviewHandler) getOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.overviewService.Get(r.Context())
	if err != nil {
		common.RespondWithErr(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ov)
}
