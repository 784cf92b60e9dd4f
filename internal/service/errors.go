package service

import (
	"errors"
	"net/http"

	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

// MissingFieldsMessage is reported when to, subject or email_body is absent.
const MissingFieldsMessage = "Missing required fields: to, subject, and email_body are required"

var (
	// ErrMissingFields indicates a required email request field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidRequest indicates a request that cannot be processed as sent.
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorResponse maps err to the status code and message returned to callers
// in the {"success": false, "error": ...} envelope.
func ErrorResponse(err error) (int, string) {
	var relay *mailer.RelayError

	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, mailer.ErrNoRecipient),
		errors.Is(err, mailer.ErrNoSubject),
		errors.Is(err, mailer.ErrNoContent):
		return http.StatusBadRequest, MissingFieldsMessage

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, invoice.ErrInvalidInvoice),
		errors.Is(err, mailer.ErrUnknownFormat):
		return http.StatusBadRequest, err.Error()

	case errors.As(err, &relay):
		return http.StatusInternalServerError, "Failed to send email: " + relay.Message

	case errors.Is(err, mailer.ErrSendFailed):
		return http.StatusInternalServerError, "Failed to send email: " + cause(err, mailer.ErrSendFailed).Error()

	default:
		return http.StatusInternalServerError, "An unexpected error occurred: " + err.Error()
	}
}

// cause returns the first error joined with sentinel, or err itself.
func cause(err, sentinel error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	for _, e := range joined.Unwrap() {
		if e != sentinel {
			return e
		}
	}
	return err
}
