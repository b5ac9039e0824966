package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type AssociationsHandler struct{ svc service.AssociationService }

func NewAssociationsHandler(svc service.AssociationService) *AssociationsHandler {
	return &AssociationsHandler{svc: svc}
}

func (h *AssociationsHandler) Create(c *gin.Context) {
	var req dto.CreateAssociationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	association, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"association": association})
}

// SedesForProduct lists every sede the product is associated with,
// each with its local stock level.
func (h *AssociationsHandler) SedesForProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sedes, err := h.svc.SedesForProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "sedes", sedes, len(sedes))
}
