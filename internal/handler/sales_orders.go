package handler

import (
	"net/http"

	"inventario/internal/dto"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesOrdersHandler struct{ svc service.SalesOrderService }

func NewSalesOrdersHandler(svc service.SalesOrderService) *SalesOrdersHandler {
	return &SalesOrdersHandler{svc: svc}
}

func (h *SalesOrdersHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "salesOrders", orders, len(orders))
}

// Get returns the order header with its line items preloaded.
func (h *SalesOrdersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"salesOrder": order})
}

func (h *SalesOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"salesOrder": order})
}

func (h *SalesOrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateSalesOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"salesOrder": order})
}

func (h *SalesOrdersHandler) Delete(c *gin.Context) {
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
