package lambdafn_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invoiceagent/invoiceagent/internal/lambdafn"
	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/pkg/document"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

type stubSender struct {
	mock.Mock
}

func (s *stubSender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	args := s.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type stubConverter struct {
	pdf []byte
	err error
}

func (c stubConverter) ToPDF(context.Context, string) ([]byte, error) { return c.pdf, c.err }
func (c stubConverter) Close() error                                  { return nil }

func emailHandler(sender mailer.Sender) *lambdafn.EmailHandler {
	m := mailer.New(sender, mailer.Config{})
	return lambdafn.NewEmailHandler(service.New(m, nil), logger.NewNope())
}

func body(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestEmailHandler(t *testing.T) {
	t.Parallel()

	t.Run("gateway event", func(t *testing.T) {
		t.Parallel()

		sender := new(stubSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
			return e.To[0] == "tenant@example.com" && e.HTML == "<p>Hi,</p>" && len(e.Attachments) == 1
		})).Return("ses-id-1", nil)

		payload, _ := json.Marshal(map[string]string{
			"to":         "tenant@example.com",
			"subject":    "Invoice",
			"email_body": "Hi,",
			"pdf_data":   base64.StdEncoding.EncodeToString([]byte("%PDF")),
		})
		event, _ := json.Marshal(map[string]any{"httpMethod": "POST", "body": string(payload)})

		resp, err := emailHandler(sender).Handle(context.Background(), event)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
		assert.Equal(t, map[string]any{
			"success":       true,
			"messageId":     "ses-id-1",
			"message":       "Email sent successfully",
			"hasAttachment": true,
		}, body(t, resp.Body))
	})

	t.Run("direct invocation", func(t *testing.T) {
		t.Parallel()

		sender := new(stubSender)
		sender.On("Send", mock.Anything, mock.Anything).Return("ses-id-2", nil)

		event := json.RawMessage(`{"to":"a@example.com","subject":"s","email_body":"b"}`)
		resp, err := emailHandler(sender).Handle(context.Background(), event)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body(t, resp.Body)["hasAttachment"])
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		sender := new(stubSender)
		resp, err := emailHandler(sender).Handle(context.Background(), json.RawMessage(`{"to":"a@example.com"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, map[string]any{
			"success": false,
			"error":   "Missing required fields: to, subject, and email_body are required",
		}, body(t, resp.Body))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("relay rejection", func(t *testing.T) {
		t.Parallel()

		sender := new(stubSender)
		sender.On("Send", mock.Anything, mock.Anything).Return("", &mailer.RelayError{
			Provider: "ses",
			Code:     "MessageRejected",
			Message:  "Email address is not verified.",
		})

		event := json.RawMessage(`{"to":"a@example.com","subject":"s","email_body":"b"}`)
		resp, err := emailHandler(sender).Handle(context.Background(), event)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to send email: Email address is not verified.", body(t, resp.Body)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		resp, err := emailHandler(new(stubSender)).Handle(context.Background(), json.RawMessage(`{"body":"not json"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, body(t, resp.Body)["error"], "An unexpected error occurred: ")
	})
}

func TestPDFHandler(t *testing.T) {
	t.Parallel()

	newHandler := func(conv document.Converter) *lambdafn.PDFHandler {
		docs := document.New(conv, invoice.DefaultProfile())
		return lambdafn.NewPDFHandler(service.New(nil, docs), logger.NewNope())
	}

	event := json.RawMessage(`{
		"date": "2026-01-15",
		"invoice_number": "INV-7",
		"items": [{"description": "Rent", "amount": 4500}],
		"gst_amount": 450
	}`)

	t.Run("renders pdf", func(t *testing.T) {
		t.Parallel()

		resp, err := newHandler(stubConverter{pdf: []byte("%PDF-1.4")}).Handle(context.Background(), event)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, resp.IsBase64Encoded)
		assert.Equal(t, "application/pdf", resp.Headers["Content-Type"])
		assert.Equal(t, "inline; filename=invoice.pdf", resp.Headers["Content-Disposition"])
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")), resp.Body)
	})

	t.Run("invalid invoice", func(t *testing.T) {
		t.Parallel()

		resp, err := newHandler(stubConverter{}).Handle(context.Background(), json.RawMessage(`{"date":"soon"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body(t, resp.Body)["error"], "invalid invoice")
	})

	t.Run("converter failure", func(t *testing.T) {
		t.Parallel()

		resp, err := newHandler(stubConverter{err: errors.New("browser crashed")}).Handle(context.Background(), event)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, body(t, resp.Body)["error"], "browser crashed")
	})
}
