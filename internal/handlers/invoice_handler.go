package handlers

import (
	"errors"
	"net/http"

	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service *invoices.Service
}

func NewInvoiceHandler(s *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.service.Get(c.Request.Context(), sessionUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) GetValuations(c *gin.Context) {
	logs, err := h.service.Valuations(c.Request.Context(), sessionUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": logs})
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), sessionUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
	var inv models.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.service.Save(c.Request.Context(), sessionUser(c), c.Param("id"), &inv); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice saved", "invoice": inv})
}

func (h *InvoiceHandler) GetProfile(c *gin.Context) {
	p, err := h.service.Profile(c.Request.Context(), sessionUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *InvoiceHandler) SaveProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.service.SaveProfile(c.Request.Context(), sessionUser(c), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile saved", "profile": p})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, invoices.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
	case errors.Is(err, invoices.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
	case errors.Is(err, invoices.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithError(err).Error("invoice request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
