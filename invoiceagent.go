package invoiceagent

import (
	"context"
	"log/slog"
	"time"

	"github.com/invoiceagent/invoiceagent/internal"
	"github.com/invoiceagent/invoiceagent/middlewares"
	"github.com/invoiceagent/invoiceagent/pkg/health"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
)

type (
	// App is the HTTP application.
	App = internal.App

	// Router is used by handlers to declare routes.
	Router = internal.Router

	// Context is the per-request context.
	Context = internal.Context

	// Handler declares routes.
	Handler = internal.Handler

	// HandlerFunc handles one route and returns an error instead of writing it.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc.
	Middleware = internal.Middleware

	// ErrorHandler renders handler errors.
	ErrorHandler = internal.ErrorHandler

	// Option configures an App.
	Option = internal.Option

	// RunOption configures App.Run.
	RunOption = internal.RunOption

	// HealthOption configures the health endpoints.
	HealthOption = internal.HealthOption

	// HTTPError carries a status code and a user-facing message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ContextExtractor adds request-scoped attributes to log records.
	ContextExtractor = logger.ContextExtractor
)

// New creates an App.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// ContextValue returns the value stored under key, or the zero value of T.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// QueryDefault returns a query parameter converted to T, or defaultValue.
func QueryDefault[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string, defaultValue T) T {
	return internal.QueryDefault(c, name, defaultValue)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// AsHTTPError extracts an HTTPError from err, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// RequestIDExtractor adds request_id to log records.
func RequestIDExtractor() ContextExtractor {
	return middlewares.RequestIDExtractor()
}

// DefaultMiddlewares is the stack used by the invoice API server:
// request IDs, panic recovery and permissive CORS.
func DefaultMiddlewares() []Middleware {
	return []Middleware{
		middlewares.RequestID(),
		middlewares.Recover(),
		middlewares.CORS(),
	}
}
