package middlewares

import (
	"net/http"

	"github.com/invoiceagent/invoiceagent/internal"
)

// ErrorBody is the JSON body written for failed requests.
type ErrorBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// JSONErrorHandler renders handler errors as {"success": false, "error": ...}.
// HTTPError messages are shown as-is; anything else is reported as an
// unexpected error with status 500. Server errors are logged.
func JSONErrorHandler() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		status := http.StatusInternalServerError
		msg := "An unexpected error occurred: " + err.Error()

		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			status, msg = httpErr.Code, httpErr.Message
		} else if _, ok := AsPanicError(err); ok {
			msg = "An unexpected error occurred"
		} else if te, ok := AsTimeoutError(err); ok {
			status, msg = http.StatusGatewayTimeout, te.Error()
		}

		if status >= http.StatusInternalServerError {
			c.LogError("request failed",
				"status", status,
				"path", c.Request().URL.Path,
				"error", err.Error(),
			)
		}

		return c.JSON(status, ErrorBody{
			Success:   false,
			Error:     msg,
			RequestID: GetRequestID(c),
		})
	}
}

// NotFound returns a handler that reports unmatched routes as HTTPErrors.
func NotFound() internal.HandlerFunc {
	return func(c internal.Context) error {
		return internal.ErrNotFound("route not found: " + c.Request().Method + " " + c.Request().URL.Path)
	}
}

// MethodNotAllowed returns a handler that reports unsupported methods as
// HTTPErrors.
func MethodNotAllowed() internal.HandlerFunc {
	return func(c internal.Context) error {
		return internal.ErrMethodNotAllowed("method not allowed: " + c.Request().Method)
	}
}
