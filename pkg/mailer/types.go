package mailer

import "fmt"

// PDFContentType is the MIME type of invoice attachments.
const PDFContentType = "application/pdf"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Providers that support tagging translate them:
//   - Resend: name-value pairs (presence-only tags become name="true")
//   - SES: message tags with the same rule
//   - SMTP: ignored
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Pairs flattens tags to name/value strings.
// Presence-only tags get the value "true".
func (t Tags) Pairs() map[string]string {
	out := make(map[string]string, len(t))
	for k, v := range t {
		switch val := v.(type) {
		case string:
			out[k] = val
		case struct{}:
			out[k] = "true"
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider-specific tags/categories
	Subject     string            // Email subject
	HTML        string            // HTML body content
	Text        string            // Plain text alternative
	From        string            // Override default sender (if provider allows)
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// HasAttachments reports whether the email carries at least one attachment.
// Providers use it to choose between simple and raw delivery.
func (e *Email) HasAttachments() bool {
	return len(e.Attachments) > 0
}

// Recipients returns all envelope recipients: To, CC and BCC.
func (e *Email) Recipients() []string {
	out := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	out = append(out, e.To...)
	out = append(out, e.CC...)
	return append(out, e.BCC...)
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// PDFAttachment wraps PDF bytes as an attachment named filename.
func PDFAttachment(filename string, data []byte) Attachment {
	return Attachment{
		Filename:    filename,
		ContentType: PDFContentType,
		Content:     data,
	}
}
