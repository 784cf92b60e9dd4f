// Package internal implements the HTTP application core behind the
// invoiceagent package: the App, the chi-backed Router, the request Context,
// HTTPError and the graceful server runtime.
//
// Import "github.com/invoiceagent/invoiceagent" instead; it re-exports the
// public API.
//
// # Handlers
//
// Handlers implement Routes and receive their dependencies by constructor:
//
//	type InvoiceHandler struct {
//	    svc *service.Service
//	}
//
//	func (h *InvoiceHandler) Routes(r internal.Router) {
//	    r.POST("/invoice/pdf", h.pdf)
//	}
//
// A HandlerFunc returns an error instead of writing one. The App's
// ErrorHandler renders it unless the response has already been started.
//
// # Context
//
// Context embeds context.Context and can be passed straight to the service
// layer. Set stores values in the request's context.Context, so slog context
// extractors (such as the request ID) see them.
//
// # Runtime
//
// App.Run listens on the given address, runs startup hooks, serves until
// SIGINT or SIGTERM, then shuts down gracefully and runs shutdown hooks
// (closing the headless browser, for example).
package internal
