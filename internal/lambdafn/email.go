package lambdafn

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/pkg/gateway"
)

// EmailHandler sends one invoice email per invocation.
type EmailHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(svc *service.Service, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{svc: svc, logger: logger}
}

// Handle is the Lambda entry point. Failures are reported in the response
// body; the returned error is always nil so the gateway sees the status code.
func (h *EmailHandler) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	var req service.EmailRequest
	if err := gateway.Decode(event, &req); err != nil {
		return failure(ctx, h.logger, err), nil
	}

	res, err := h.svc.SendEmail(ctx, req)
	if err != nil {
		return failure(ctx, h.logger, err), nil
	}
	return gateway.JSON(http.StatusOK, res), nil
}

func failure(ctx context.Context, logger *slog.Logger, err error) events.APIGatewayProxyResponse {
	status, msg := service.ErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
	}
	return gateway.Error(status, msg)
}
