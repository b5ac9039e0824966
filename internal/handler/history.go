package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler exposes the append-only transaction log. No update or
// delete routes exist for it.
type HistoryHandler struct{ svc service.TransactionHistoryService }

func NewHistoryHandler(svc service.TransactionHistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) List(c *gin.Context) {
	history, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "history", history, len(history))
}

func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"entry": entry})
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	entry, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"entry": entry})
}
