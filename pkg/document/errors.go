package document

import "errors"

var (
	// ErrTemplate indicates the invoice template failed to execute.
	ErrTemplate = errors.New("invoice template rendering failed")

	// ErrBrowserConnect indicates the headless browser could not be started.
	ErrBrowserConnect = errors.New("failed to connect to browser")

	// ErrPageCreate indicates a browser page could not be opened.
	ErrPageCreate = errors.New("failed to create browser page")

	// ErrPageLoad indicates the invoice HTML did not load.
	ErrPageLoad = errors.New("failed to load page")

	// ErrPDFGeneration indicates printing to PDF failed.
	ErrPDFGeneration = errors.New("PDF generation failed")
)
