// Package invoice holds the rent invoice model and the issuer profile it is rendered with.
//
// Amounts arrive as decimal dollars (the wire format of the invoice request) and
// are converted to integer cents before any arithmetic:
//
//	inv := invoice.Invoice{
//		Date:      "2025-12-24",
//		Number:    "00219",
//		Items:     []invoice.Item{{Description: "Rent", Amount: 4862.45}},
//		GSTAmount: 486.25,
//	}
//	inv.ApplyDefaults(invoice.DefaultProfile())
//	if err := inv.Validate(); err != nil {
//		return err
//	}
//	invoice.FormatAmount(inv.Total()) // "$5,348.70"
//
// The Profile describes who issues the invoice: business details, the bank
// account to pay into, and the default customer and property used when a
// request leaves them out. Profiles are YAML files; DefaultProfile returns the
// embedded sample.
package invoice
