package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/invoiceagent/invoiceagent/pkg/sanitizer"
	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

// BodyFormat selects how a message body is turned into HTML.
type BodyFormat string

const (
	// FormatText runs the body through the invoice text converter.
	FormatText BodyFormat = "text"
	// FormatMarkdown renders the body as GitHub-flavoured markdown.
	// A YAML frontmatter block may supply the subject.
	FormatMarkdown BodyFormat = "markdown"
	// FormatHTML sends the body as-is.
	FormatHTML BodyFormat = "html"
)

// ParseBodyFormat maps a user-supplied name to a BodyFormat.
// The empty string selects FormatText.
func ParseBodyFormat(s string) (BodyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// renderedBody is a message body in its sendable forms.
type renderedBody struct {
	HTML    string
	Text    string
	Subject string // from markdown frontmatter, if any
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, NewButtonExtension()),
	)
}

func (m *Mailer) renderBody(format BodyFormat, src string) (*renderedBody, error) {
	var out renderedBody

	switch format {
	case FormatText:
		var opts []textmarkup.Option
		if m.config.EscapeText {
			opts = append(opts, textmarkup.WithEscaping())
		}
		out.HTML = textmarkup.Convert(src, opts...)
		out.Text = strings.TrimSpace(src)

	case FormatMarkdown:
		doc, err := ParseFrontmatter([]byte(src))
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := m.md.Convert([]byte(doc.Body), &buf); err != nil {
			return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
		}
		out.HTML = buf.String()
		out.Text = strings.TrimSpace(doc.Body)
		out.Subject = doc.String("subject")

	case FormatHTML:
		out.HTML = src
		out.Text = sanitizer.StripHTML(src)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if m.config.Sanitize {
		out.HTML = sanitizer.SanitizeMarkup(out.HTML)
	}

	if m.layout != nil {
		html, err := applyLayout(m.layout, out.HTML)
		if err != nil {
			return nil, err
		}
		out.HTML = html
	}

	return &out, nil
}
