package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/invoiceagent/invoiceagent"
	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/middlewares"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
)

// PDFResponse is the JSON form of a rendered PDF.
type PDFResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	PDF      string `json:"pdf"`
}

// Invoice serves the invoice rendering routes.
type Invoice struct {
	svc     *service.Service
	timeout time.Duration
}

// NewInvoice creates the invoice handler. PDF rendering is bounded by
// timeout; zero uses middlewares.DefaultTimeout.
func NewInvoice(svc *service.Service, timeout time.Duration) *Invoice {
	return &Invoice{svc: svc, timeout: timeout}
}

func (h *Invoice) Routes(r invoiceagent.Router) {
	r.POST("/invoice/pdf", h.pdf, middlewares.Timeout(h.timeout))
	r.POST("/invoice/html", h.html)
}

func (h *Invoice) pdf(c invoiceagent.Context) error {
	var inv invoice.Invoice
	if err := c.Bind(&inv); err != nil {
		return err
	}

	res, err := h.svc.GenerateInvoice(c.Context(), &inv)
	if err != nil {
		return fail(err)
	}

	if c.Query("format") == "base64" {
		return c.JSON(http.StatusOK, PDFResponse{
			Success:  true,
			Filename: res.Filename,
			PDF:      res.Base64(),
		})
	}

	c.SetHeader("Content-Disposition", fmt.Sprintf("inline; filename=%s", res.Filename))
	return c.Blob(http.StatusOK, "application/pdf", res.PDF)
}

func (h *Invoice) html(c invoiceagent.Context) error {
	var inv invoice.Invoice
	if err := c.Bind(&inv); err != nil {
		return err
	}

	html, err := h.svc.InvoiceHTML(&inv)
	if err != nil {
		return fail(err)
	}
	return c.HTML(http.StatusOK, html)
}
