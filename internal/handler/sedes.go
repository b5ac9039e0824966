package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type SedesHandler struct{ svc service.SedeService }

func NewSedesHandler(svc service.SedeService) *SedesHandler {
	return &SedesHandler{svc: svc}
}

func (h *SedesHandler) List(c *gin.Context) {
	sedes, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "sedes", sedes, len(sedes))
}

func (h *SedesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sede, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sede": sede})
}

func (h *SedesHandler) Create(c *gin.Context) {
	var req dto.CreateSedeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sede, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"sede": sede})
}

func (h *SedesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateSedeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sede, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sede": sede})
}

func (h *SedesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
