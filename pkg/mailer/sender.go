package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the relay's message ID.
	// The Email must have To, Subject, and HTML already set.
	Send(ctx context.Context, email *Email) (string, error)
}

// Pinger is implemented by senders that can check relay reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (string, error)

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}
