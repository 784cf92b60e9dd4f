// Package document renders invoices to HTML and PDF.
//
// Rendering happens in two stages. HTMLRenderer fills an embedded A4 invoice
// template from an invoice.Invoice and the issuer invoice.Profile. A Converter
// then prints the HTML to PDF. RodConverter drives headless Chrome through
// go-rod; tests substitute their own Converter.
//
// # Usage
//
//	conv := document.NewRodConverter(document.Config{Timeout: 30 * time.Second})
//	defer conv.Close()
//
//	r := document.New(conv, profile)
//	res, err := r.Render(ctx, inv)
//	if err != nil {
//		return err
//	}
//	os.WriteFile(res.Filename, res.PDF, 0o644)
//
// # Browser
//
// The browser is launched lazily on the first conversion. Set ROD_BROWSER_BIN
// to use a pre-installed Chromium; the sandbox is disabled whenever a binary is
// given or NoSandbox is set, which containers and Lambda require.
package document
