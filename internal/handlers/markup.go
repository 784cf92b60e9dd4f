package handlers

import (
	"mime"
	"net/http"

	"github.com/invoiceagent/invoiceagent"
	"github.com/invoiceagent/invoiceagent/internal/service"
)

// Markup serves the text-to-HTML conversion route.
type Markup struct {
	svc *service.Service
}

// NewMarkup creates the markup handler.
func NewMarkup(svc *service.Service) *Markup {
	return &Markup{svc: svc}
}

func (h *Markup) Routes(r invoiceagent.Router) {
	r.POST("/markup", h.convert)
}

// convert accepts a JSON MarkupRequest or a raw text body. ?escape=1 turns on
// HTML escaping; ?explain=1 returns the line classes instead of markup.
func (h *Markup) convert(c invoiceagent.Context) error {
	var req service.MarkupRequest

	if isJSON(c.Header("Content-Type")) {
		if err := c.Bind(&req); err != nil {
			return err
		}
	} else {
		body, err := c.Body()
		if err != nil {
			return err
		}
		req.Text = string(body)
	}

	if invoiceagent.QueryDefault(c, "explain", false) {
		return c.JSON(http.StatusOK, h.svc.ExplainMarkup(req.Text))
	}

	escape := req.Escape || invoiceagent.QueryDefault(c, "escape", false)
	return c.HTML(http.StatusOK, h.svc.ConvertMarkup(req.Text, escape))
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}
