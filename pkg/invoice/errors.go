package invoice

import "errors"

var (
	// ErrInvalidInvoice indicates required invoice fields are missing.
	ErrInvalidInvoice = errors.New("invalid invoice")

	// ErrInvalidProfile indicates the issuer profile could not be parsed.
	ErrInvalidProfile = errors.New("invalid issuer profile")
)
