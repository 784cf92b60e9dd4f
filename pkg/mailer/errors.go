package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no body content was provided.
	ErrNoContent = errors.New("email must have body content")

	// ErrNoSender indicates no From address is configured.
	ErrNoSender = errors.New("email must have a sender address")

	// ErrUnknownFormat indicates an unsupported body format.
	ErrUnknownFormat = errors.New("unknown body format")

	// ErrRenderFailed indicates body rendering failed.
	ErrRenderFailed = errors.New("failed to render email body")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// RelayError is returned by providers when the relay rejects a request.
// Message is the relay's human-readable reason.
type RelayError struct {
	Err      error
	Provider string
	Code     string
	Message  string
}

func (e *RelayError) Error() string {
	if e.Code == "" {
		return e.Provider + ": " + e.Message
	}
	return e.Provider + ": " + e.Code + ": " + e.Message
}

func (e *RelayError) Unwrap() error {
	return e.Err
}
