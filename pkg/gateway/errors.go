package gateway

import "errors"

var (
	// ErrInvalidEvent indicates the event is not a JSON object.
	ErrInvalidEvent = errors.New("gateway: invalid event")

	// ErrInvalidPayload indicates the payload could not be decoded.
	ErrInvalidPayload = errors.New("gateway: invalid payload")
)
