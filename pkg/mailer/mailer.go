package mailer

import (
	"context"
	"errors"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// Mailer composes invoice emails and hands them to a Sender.
type Mailer struct {
	sender Sender
	md     goldmark.Markdown
	layout *template.Template
	config Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLayout wraps every rendered body in tmpl. See LoadLayout.
func WithLayout(tmpl *template.Template) Option {
	return func(m *Mailer) {
		m.layout = tmpl
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		md:     newMarkdown(),
		config: cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Message is one outgoing invoice email.
type Message struct {
	Tags        Tags
	To          string     // Single recipient
	Subject     string     // Required unless a markdown body sets one in frontmatter
	Body        string     // Source text in Format
	Format      BodyFormat // Default: Config.BodyFormat
	PDFFilename string     // Default: Config.AttachmentName
	ReplyTo     string
	CC          []string
	BCC         []string
	PDF         []byte // Attached when non-empty
}

// Receipt describes a sent message.
type Receipt struct {
	MessageID     string
	HasAttachment bool
}

// SendInvoice renders msg and sends it.
func (m *Mailer) SendInvoice(ctx context.Context, msg Message) (*Receipt, error) {
	email, err := m.Compose(msg)
	if err != nil {
		return nil, err
	}

	id, err := m.Send(ctx, email)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		MessageID:     id,
		HasAttachment: email.HasAttachments(),
	}, nil
}

// Preview renders the body of msg to HTML without sending anything.
func (m *Mailer) Preview(msg Message) (string, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return "", ErrNoContent
	}

	body, err := m.render(msg)
	if err != nil {
		return "", err
	}
	return body.HTML, nil
}

// Compose validates msg and builds the Email that SendInvoice would deliver.
func (m *Mailer) Compose(msg Message) (*Email, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, ErrNoRecipient
	}
	if strings.TrimSpace(msg.Body) == "" {
		return nil, ErrNoContent
	}

	body, err := m.render(msg)
	if err != nil {
		return nil, err
	}

	subject := msg.Subject
	if subject == "" {
		subject = body.Subject
	}
	if strings.TrimSpace(subject) == "" {
		return nil, ErrNoSubject
	}

	email := &Email{
		To:      []string{msg.To},
		Subject: subject,
		HTML:    body.HTML,
		Text:    body.Text,
		ReplyTo: msg.ReplyTo,
		CC:      msg.CC,
		BCC:     msg.BCC,
		Tags:    msg.Tags,
	}

	if len(msg.PDF) > 0 {
		email.Attachments = []Attachment{PDFAttachment(m.attachmentName(msg.PDFFilename), msg.PDF)}
	}

	return email, nil
}

// Send delivers a pre-built email without rendering.
func (m *Mailer) Send(ctx context.Context, email *Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrNoRecipient
	}
	if email.Subject == "" {
		return "", ErrNoSubject
	}
	if email.HTML == "" {
		return "", ErrNoContent
	}

	id, err := m.sender.Send(ctx, email)
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	return id, nil
}

// Ping checks the relay when the sender supports it.
func (m *Mailer) Ping(ctx context.Context) error {
	if p, ok := m.sender.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (m *Mailer) render(msg Message) (*renderedBody, error) {
	format := msg.Format
	if format == "" {
		f, err := ParseBodyFormat(m.config.BodyFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return m.renderBody(format, msg.Body)
}

func (m *Mailer) attachmentName(name string) string {
	switch {
	case name != "":
		return name
	case m.config.AttachmentName != "":
		return m.config.AttachmentName
	default:
		return "invoice.pdf"
	}
}
