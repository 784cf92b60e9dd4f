// Package middlewares provides the HTTP middleware stack of the invoice API.
//
//	app := invoiceagent.New(
//	    invoiceagent.WithCustomLogger(logger.NewFromConfig(cfg.Log, middlewares.RequestIDExtractor())),
//	    invoiceagent.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CORS(),
//	    ),
//	    invoiceagent.WithErrorHandler(middlewares.JSONErrorHandler()),
//	)
//
// RequestID reuses X-Request-ID (or the API Gateway trace header) or
// generates a UUID. RequestIDExtractor adds it to every log record.
//
// Recover converts panics into *PanicError. Timeout bounds a route and
// returns *TimeoutError; the PDF routes use it with the renderer timeout.
//
// JSONErrorHandler renders every error in the {"success": false, "error": ...}
// envelope shared with the Lambda responses.
package middlewares
