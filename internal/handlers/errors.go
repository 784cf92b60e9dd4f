package handlers

import (
	"github.com/invoiceagent/invoiceagent"
	"github.com/invoiceagent/invoiceagent/internal/service"
)

// fail converts a service error into an HTTPError. Errors that already
// carry a status pass through.
func fail(err error) error {
	if invoiceagent.AsHTTPError(err) != nil {
		return err
	}
	status, msg := service.ErrorResponse(err)
	return invoiceagent.NewHTTPError(status, msg, invoiceagent.WithError(err))
}
