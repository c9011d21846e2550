package handlers

import (
	"errors"
	"net/http"

	"invoice-preview-backend/internal/services/preview"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "handlers")

type Pager interface {
	Page(vm *preview.ViewModel) (string, error)
}

type PreviewHandler struct {
	service  *preview.Service
	renderer Pager
}

func NewPreviewHandler(s *preview.Service, r Pager) *PreviewHandler {
	return &PreviewHandler{service: s, renderer: r}
}

// Preview serves the HTML page of one invoice of a domain.
func (h *PreviewHandler) Preview(c *gin.Context) {
	req := preview.Request{
		Viewer:    sessionUser(c),
		Domain:    c.Param("domain"),
		InvoiceID: c.Param("id"),
	}

	vm, err := h.service.Preview(c.Request.Context(), req)
	if errors.Is(err, preview.ErrInvoiceNotFound) {
		logger.WithFields(logrus.Fields{"domain": req.Domain, "id": req.InvoiceID}).Debug("preview of unknown invoice")
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if err != nil {
		logger.WithError(err).Error("preview failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoice"})
		return
	}

	page, err := h.renderer.Page(vm)
	if err != nil {
		logger.WithError(err).Error("render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoice"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
