package lambdafn

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/pkg/gateway"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
)

// PDFHandler renders one invoice PDF per invocation.
type PDFHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewPDFHandler creates a PDFHandler.
func NewPDFHandler(svc *service.Service, logger *slog.Logger) *PDFHandler {
	return &PDFHandler{svc: svc, logger: logger}
}

// Handle returns the PDF as a base64 body for inline display.
func (h *PDFHandler) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	var inv invoice.Invoice
	if err := gateway.Decode(event, &inv); err != nil {
		return failure(ctx, h.logger, err), nil
	}

	res, err := h.svc.GenerateInvoice(ctx, &inv)
	if err != nil {
		return failure(ctx, h.logger, err), nil
	}
	return gateway.PDF(res.Filename, res.PDF), nil
}
