package ses

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

var (
	// ErrInvalidConfig indicates the sender could not be configured.
	ErrInvalidConfig = errors.New("ses: invalid configuration")

	// ErrRejected indicates SES refused the message, e.g. unverified identity.
	ErrRejected = errors.New("ses: message rejected")

	// ErrThrottled indicates a sending quota or rate limit was hit.
	ErrThrottled = errors.New("ses: sending throttled")
)

// wrapSESError converts SES API errors into mailer.RelayError carrying the
// service's message, joined with a sentinel where one applies.
func wrapSESError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("ses: %w", err)
	}

	relayErr := &mailer.RelayError{
		Provider: "ses",
		Code:     apiErr.ErrorCode(),
		Message:  apiErr.ErrorMessage(),
		Err:      err,
	}

	switch apiErr.ErrorCode() {
	case "MessageRejected", "MailFromDomainNotVerifiedException", "AccountSuspendedException", "NotFoundException":
		return errors.Join(ErrRejected, relayErr)
	case "TooManyRequestsException", "LimitExceededException", "SendingPausedException", "Throttling":
		return errors.Join(ErrThrottled, relayErr)
	}
	return relayErr
}
