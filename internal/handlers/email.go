package handlers

import (
	"net/http"

	"github.com/invoiceagent/invoiceagent"
	"github.com/invoiceagent/invoiceagent/internal/service"
)

// Email serves the email routes.
type Email struct {
	svc *service.Service
}

// NewEmail creates the email handler.
func NewEmail(svc *service.Service) *Email {
	return &Email{svc: svc}
}

func (h *Email) Routes(r invoiceagent.Router) {
	r.POST("/email", h.send)
	r.POST("/email/preview", h.preview)
}

func (h *Email) send(c invoiceagent.Context) error {
	var req service.EmailRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	res, err := h.svc.SendEmail(c, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Email) preview(c invoiceagent.Context) error {
	var req service.EmailRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	html, err := h.svc.PreviewEmail(req)
	if err != nil {
		return fail(err)
	}
	return c.HTML(http.StatusOK, html)
}
