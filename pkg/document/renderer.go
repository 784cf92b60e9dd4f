package document

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/invoiceagent/invoiceagent/pkg/invoice"
)

// Result is a rendered invoice.
type Result struct {
	Filename string
	HTML     string
	PDF      []byte
}

// Base64 returns the PDF encoded with standard base64, the form expected by
// JSON clients and the gateway response body.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.PDF)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFilename sets the filename reported in Result.
func WithFilename(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.filename = name
		}
	}
}

// Renderer turns invoices into PDF documents.
type Renderer struct {
	conv     Converter
	html     *HTMLRenderer
	profile  *invoice.Profile
	filename string
}

// New creates a Renderer using conv for PDF output.
// A nil profile falls back to invoice.DefaultProfile.
func New(conv Converter, profile *invoice.Profile, opts ...Option) *Renderer {
	if profile == nil {
		profile = invoice.DefaultProfile()
	}
	r := &Renderer{
		conv:     conv,
		html:     NewHTMLRenderer(),
		profile:  profile,
		filename: DefaultFilename,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the issuer profile used for rendering.
func (r *Renderer) Profile() *invoice.Profile {
	return r.profile
}

// RenderHTML renders the invoice without converting it to PDF.
func (r *Renderer) RenderHTML(inv *invoice.Invoice) (string, error) {
	return r.html.Render(inv, r.profile)
}

// Render renders the invoice to HTML and prints it to PDF.
func (r *Renderer) Render(ctx context.Context, inv *invoice.Invoice) (*Result, error) {
	html, err := r.RenderHTML(inv)
	if err != nil {
		return nil, err
	}

	pdf, err := r.conv.ToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}

	return &Result{
		Filename: r.filename,
		HTML:     html,
		PDF:      pdf,
	}, nil
}

// Ping reports whether the converter is ready. Converters without a health
// check are always ready.
func (r *Renderer) Ping(ctx context.Context) error {
	if p, ok := r.conv.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases the converter.
func (r *Renderer) Close() error {
	return r.conv.Close()
}
