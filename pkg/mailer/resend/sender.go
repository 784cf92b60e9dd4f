package resend

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v3"

	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

// ErrMissingAPIKey indicates the sender was created without an API key.
var ErrMissingAPIKey = errors.New("resend: API key is required")

// EmailsAPI is the part of the Resend client used by Sender.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

var _ mailer.Sender = (*Sender)(nil)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails EmailsAPI
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewWithClient(resend.NewClient(cfg.APIKey).Emails, cfg), nil
}

// NewWithClient creates a sender around an existing emails API.
func NewWithClient(emails EmailsAPI, cfg Config) *Sender {
	return &Sender{emails: emails, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if email.HasAttachments() {
		req.Attachments = convertAttachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return "", &mailer.RelayError{Provider: "resend", Message: err.Error(), Err: err}
	}
	return resp.Id, nil
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags.Pairs() {
		result = append(result, resend.Tag{Name: name, Value: value})
	}
	return result
}
