package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/invoiceagent/invoiceagent/pkg/document"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
	"github.com/invoiceagent/invoiceagent/pkg/mailer"
	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

// SentMessage is the success message of SendEmail.
const SentMessage = "Email sent successfully"

// Mailer sends and previews invoice emails. Implemented by *mailer.Mailer.
type Mailer interface {
	SendInvoice(ctx context.Context, msg mailer.Message) (*mailer.Receipt, error)
	Preview(msg mailer.Message) (string, error)
}

// Documents renders invoices. Implemented by *document.Renderer.
type Documents interface {
	Render(ctx context.Context, inv *invoice.Invoice) (*document.Result, error)
	RenderHTML(inv *invoice.Invoice) (string, error)
	Profile() *invoice.Profile
}

// Service runs invoice operations.
type Service struct {
	mail   Mailer
	docs   Documents
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service. Either collaborator may be nil when the caller
// only needs the other half (the PDF Lambda has no mailer).
func New(mail Mailer, docs Documents, opts ...Option) *Service {
	s := &Service{
		mail:   mail,
		docs:   docs,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendEmail validates req and sends it. Undecodable pdf_data is logged and
// the email goes out without an attachment.
func (s *Service) SendEmail(ctx context.Context, req EmailRequest) (*EmailResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.mail == nil {
		return nil, fmt.Errorf("%w: mailer is not configured", ErrInvalidRequest)
	}

	msg, err := s.message(req)
	if err != nil {
		return nil, err
	}

	if req.PDFData != "" {
		pdf, err := decodePDF(req.PDFData)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to decode pdf_data, sending without attachment",
				slog.String("error", err.Error()),
			)
		} else {
			msg.PDF = pdf
		}
	}

	receipt, err := s.mail.SendInvoice(ctx, msg)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to send email",
			slog.String("to", req.To),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "email sent",
		slog.String("to", req.To),
		slog.String("message_id", receipt.MessageID),
		slog.Bool("has_attachment", receipt.HasAttachment),
	)

	return &EmailResult{
		Success:       true,
		MessageID:     receipt.MessageID,
		Message:       SentMessage,
		HasAttachment: receipt.HasAttachment,
	}, nil
}

// PreviewEmail renders the email body as it would be sent. Only email_body
// is required.
func (s *Service) PreviewEmail(req EmailRequest) (string, error) {
	if req.EmailBody == "" {
		return "", ErrMissingFields
	}
	if s.mail == nil {
		return "", fmt.Errorf("%w: mailer is not configured", ErrInvalidRequest)
	}

	msg, err := s.message(req)
	if err != nil {
		return "", err
	}
	return s.mail.Preview(msg)
}

// GenerateInvoice fills defaults from the issuer profile, validates inv and
// renders it to PDF.
func (s *Service) GenerateInvoice(ctx context.Context, inv *invoice.Invoice) (*document.Result, error) {
	if err := s.prepare(inv); err != nil {
		return nil, err
	}

	res, err := s.docs.Render(ctx, inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render invoice",
			slog.String("invoice_number", inv.Number),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "invoice rendered",
		slog.String("invoice_number", inv.Number),
		slog.Int("pdf_bytes", len(res.PDF)),
	)
	return res, nil
}

// InvoiceHTML is GenerateInvoice without the PDF step.
func (s *Service) InvoiceHTML(inv *invoice.Invoice) (string, error) {
	if err := s.prepare(inv); err != nil {
		return "", err
	}
	return s.docs.RenderHTML(inv)
}

// ConvertMarkup converts invoice text to an HTML fragment.
func (s *Service) ConvertMarkup(text string, escape bool) string {
	var opts []textmarkup.Option
	if escape {
		opts = append(opts, textmarkup.WithEscaping())
	}
	return textmarkup.Convert(text, opts...)
}

func (s *Service) prepare(inv *invoice.Invoice) error {
	if s.docs == nil {
		return fmt.Errorf("%w: renderer is not configured", ErrInvalidRequest)
	}
	if inv == nil {
		return fmt.Errorf("%w: empty invoice", ErrInvalidRequest)
	}
	inv.ApplyDefaults(s.docs.Profile())
	return inv.Validate()
}

func (s *Service) message(req EmailRequest) (mailer.Message, error) {
	msg := mailer.Message{
		To:          req.To,
		Subject:     req.Subject,
		Body:        req.EmailBody,
		PDFFilename: req.PDFFilename,
	}
	if req.BodyFormat != "" {
		format, err := mailer.ParseBodyFormat(req.BodyFormat)
		if err != nil {
			return mailer.Message{}, err
		}
		msg.Format = format
	}
	return msg, nil
}

// LineInfo is the syntactic class of one input line.
type LineInfo struct {
	Line  string `json:"line"`
	Class string `json:"class"`
}

// ExplainMarkup classifies each line of text the way the converter sees it,
// without the signature look-ahead.
func (s *Service) ExplainMarkup(text string) []LineInfo {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]LineInfo, 0, len(lines))
	for _, line := range lines {
		out = append(out, LineInfo{Line: line, Class: textmarkup.Classify(line).String()})
	}
	return out
}
