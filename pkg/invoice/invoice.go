package invoice

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item is a single line of the invoice table.
type Item struct {
	Description string  `json:"description"`
	Hours       string  `json:"hours,omitempty"`
	Rate        string  `json:"rate,omitempty"`
	Amount      float64 `json:"amount"`
}

// Cents returns the item amount in cents.
func (i Item) Cents() int64 {
	return ToCents(i.Amount)
}

// Party is a named address block on the invoice.
type Party struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Address string `yaml:"address"`
	Suburb  string `yaml:"suburb"`
	Contact string `yaml:"contact"`
}

// Invoice is the request to render one rent invoice.
// Field names follow the JSON payload accepted by the invoice endpoints.
type Invoice struct {
	Date          string  `json:"date"`
	DueDate       string  `json:"due_date"`
	Number        string  `json:"invoice_number"`
	BillToName    string  `json:"bill_to_name,omitempty"`
	BillToCompany string  `json:"bill_to_company,omitempty"`
	BillToAddress string  `json:"bill_to_address,omitempty"`
	BillToSuburb  string  `json:"bill_to_suburb,omitempty"`
	BillToContact string  `json:"bill_to_contact,omitempty"`
	PropertyLine1 string  `json:"property_line1,omitempty"`
	PropertyLine2 string  `json:"property_line2,omitempty"`
	Items         []Item  `json:"items"`
	GSTAmount     float64 `json:"gst_amount"`
}

// Customer returns the bill-to block.
func (inv *Invoice) Customer() Party {
	return Party{
		Name:    inv.BillToName,
		Company: inv.BillToCompany,
		Address: inv.BillToAddress,
		Suburb:  inv.BillToSuburb,
		Contact: inv.BillToContact,
	}
}

// Property returns the non-empty property lines.
func (inv *Invoice) Property() []string {
	lines := make([]string, 0, 2)
	for _, l := range []string{inv.PropertyLine1, inv.PropertyLine2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Subtotal is the sum of all item amounts, in cents.
func (inv *Invoice) Subtotal() int64 {
	var sum int64
	for _, it := range inv.Items {
		sum += it.Cents()
	}
	return sum
}

// GST returns the GST amount in cents.
func (inv *Invoice) GST() int64 {
	return ToCents(inv.GSTAmount)
}

// Total is subtotal plus GST, in cents.
func (inv *Invoice) Total() int64 {
	return inv.Subtotal() + inv.GST()
}

// ApplyDefaults fills absent bill-to and property fields from the profile,
// derives the due date from an ISO invoice date and, when the first item has
// no description, names it after the rent period ending on the due date.
func (inv *Invoice) ApplyDefaults(p *Profile) {
	if p != nil {
		c := p.Customer
		setDefault(&inv.BillToName, c.Name)
		setDefault(&inv.BillToCompany, c.Company)
		setDefault(&inv.BillToAddress, c.Address)
		setDefault(&inv.BillToSuburb, c.Suburb)
		setDefault(&inv.BillToContact, c.Contact)

		if len(p.Property) > 0 {
			setDefault(&inv.PropertyLine1, p.Property[0])
		}
		if len(p.Property) > 1 {
			setDefault(&inv.PropertyLine2, p.Property[1])
		}
	}

	if inv.DueDate == "" {
		if d, ok := parseISODate(inv.Date); ok {
			inv.DueDate = FirstOfNextMonth(d).Format(isoDate)
		}
	}

	if len(inv.Items) > 0 && inv.Items[0].Description == "" {
		if due, ok := parseISODate(inv.DueDate); ok {
			property := strings.TrimSpace(inv.PropertyLine1 + " " + inv.PropertyLine2)
			inv.Items[0].Description = RentDescription(property, due)
		}
	}
}

// Validate checks that the fields needed to render the invoice are present.
func (inv Invoice) Validate() error {
	err := validation.ValidateStruct(&inv,
		validation.Field(&inv.Date, validation.Required),
		validation.Field(&inv.DueDate, validation.Required),
		validation.Field(&inv.Number, validation.Required),
		validation.Field(&inv.Items, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInvoice, err)
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
