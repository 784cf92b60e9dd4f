package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

// MinRows is the number of item rows the table is padded to.
const MinRows = 7

//go:embed templates/*.html
var templatesFS embed.FS

var invoiceTemplate = template.Must(template.ParseFS(templatesFS, "templates/invoice.html"))

type itemRow struct {
	Description string
	Hours       string
	Rate        string
	Amount      string
}

type invoiceView struct {
	Profile  *invoice.Profile
	Invoice  *invoice.Invoice
	Customer invoice.Party
	Payment  template.HTML
	Subtotal string
	GST      string
	Total    string
	Property []string
	Rows     []itemRow
}

// HTMLRenderer fills the embedded invoice template.
// It holds no mutable state and is safe for concurrent use.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns a renderer for the embedded A4 invoice template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: invoiceTemplate}
}

// Render produces the full invoice HTML document.
// A nil profile falls back to invoice.DefaultProfile.
func (r *HTMLRenderer) Render(inv *invoice.Invoice, profile *invoice.Profile) (string, error) {
	if profile == nil {
		profile = invoice.DefaultProfile()
	}

	view := invoiceView{
		Profile:  profile,
		Invoice:  inv,
		Customer: inv.Customer(),
		Property: inv.Property(),
		Rows:     itemRows(inv.Items),
		Subtotal: invoice.FormatAmount(inv.Subtotal()),
		GST:      invoice.FormatAmount(inv.GST()),
		Total:    invoice.FormatAmount(inv.Total()),
		// Profile values are escaped; only the converter emits tags.
		Payment: template.HTML(textmarkup.Convert(profile.PaymentBody(), textmarkup.WithEscaping())), //nolint:gosec
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return buf.String(), nil
}

func itemRows(items []invoice.Item) []itemRow {
	rows := make([]itemRow, 0, max(MinRows, len(items)))
	for _, it := range items {
		rows = append(rows, itemRow{
			Description: it.Description,
			Hours:       it.Hours,
			Rate:        it.Rate,
			Amount:      invoice.FormatAmount(it.Cents()),
		})
	}
	for len(rows) < MinRows {
		rows = append(rows, itemRow{Amount: "-"})
	}
	return rows
}
