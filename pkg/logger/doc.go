// Package logger builds the structured slog loggers used by the HTTP server,
// the Lambda handlers and the CLI.
//
// Every logger writes to stdout (JSON by default, text with LOG_FORMAT=text).
// Context extractors add request-scoped attributes on each call:
//
//	log := logger.NewFromConfig(cfg,
//		middlewares.RequestIDExtractor(),
//		logger.LambdaRequestID(),
//	)
//	log.InfoContext(ctx, "email sent", slog.String("message_id", id))
//	// {"level":"INFO","msg":"email sent","message_id":"...","aws_request_id":"..."}
//
// When SENTRY_DSN is set, errors become Sentry issues and warnings are kept as
// Sentry logs. Without a DSN, or when the SDK fails to start, logging carries
// on to stdout only.
//
// NewNope returns a logger that discards output, for tests and defaults.
package logger
