package internal

// Handler declares routes on a router.
//
// Example:
//
//	type EmailHandler struct {
//	    svc *service.Service
//	}
//
//	func (h *EmailHandler) Routes(r invoiceagent.Router) {
//	    r.POST("/email", h.send)
//	    r.POST("/email/preview", h.preview)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
