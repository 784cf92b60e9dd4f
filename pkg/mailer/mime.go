package mailer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// NewMIMEMessage builds a multipart message for raw delivery.
// from is used unless the email overrides it. Bcc recipients are kept on the
// message for the envelope but never written to the headers.
func NewMIMEMessage(email *Email, from string) *gomail.Message {
	if email.From != "" {
		from = email.From
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if len(email.BCC) > 0 {
		m.SetHeader("Bcc", email.BCC...)
	}
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	for k, v := range email.Headers {
		m.SetHeader(k, v)
	}

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}

	for _, a := range email.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {fmt.Sprintf("%s; name=%q", a.ContentType, a.Filename)},
			}))
		}

		if a.ContentID != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-ID": {"<" + a.ContentID + ">"},
			}))
			m.Embed(a.Filename, settings...)
			continue
		}
		m.Attach(a.Filename, settings...)
	}

	return m
}

// RawMessage renders email as RFC 5322 bytes.
func RawMessage(email *Email, from string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewMIMEMessage(email, from).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("build MIME message: %w", err)
	}
	return buf.Bytes(), nil
}
