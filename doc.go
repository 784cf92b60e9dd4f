// Package invoiceagent is the HTTP application layer of the invoice agent:
// a small service that renders rent invoices to HTML and PDF and emails them
// with an optional PDF attachment.
//
// The same operations are exposed three ways:
//
//   - an HTTP server built from this package (cmd/invoiceagent serve),
//   - two AWS Lambda functions (cmd/invoiceagent lambda email|pdf),
//   - local CLI commands (markup, render, send).
//
// A server wires handlers, middleware and health checks:
//
//	app := invoiceagent.New(
//	    invoiceagent.WithCustomLogger(log),
//	    invoiceagent.WithMiddleware(invoiceagent.DefaultMiddlewares()...),
//	    invoiceagent.WithErrorHandler(middlewares.JSONErrorHandler()),
//	    invoiceagent.WithHealthChecks(
//	        invoiceagent.WithReadinessCheck("mailer", health.FromPinger(mail)),
//	    ),
//	    invoiceagent.WithHandlers(handlers.NewEmail(svc), handlers.NewInvoice(svc, 0)),
//	)
//	err := app.Run(":8080", invoiceagent.ShutdownHook(closeBrowser))
//
// Handlers return errors rather than writing them; the error handler renders
// them in the {"success": false, "error": ...} envelope.
package invoiceagent
