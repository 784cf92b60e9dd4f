package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodyBytes bounds request bodies read by Bind and Body.
// Email requests carry base64 PDFs, so the limit is generous.
const DefaultMaxBodyBytes = 10 << 20

// Context is the request context handed to handlers and middleware.
// It also implements context.Context using the request's context.
type Context interface {
	context.Context

	// Request returns the current request.
	Request() *http.Request

	// Response returns the response writer.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// SetContext replaces the request's context.Context.
	SetContext(ctx context.Context)

	// Param returns a URL path parameter.
	Param(name string) string

	// Query returns a query parameter.
	Query(name string) string

	// QueryDefault returns a query parameter or defaultValue when absent.
	QueryDefault(name, defaultValue string) string

	// Header returns a request header.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Bind decodes the JSON request body into v.
	Bind(v any) error

	// Body reads the raw request body.
	Body() ([]byte, error)

	JSON(code int, v any) error
	String(code int, s string) error
	HTML(code int, s string) error
	Blob(code int, contentType string, data []byte) error
	NoContent(code int) error

	// Error builds an HTTPError for returning from a handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the response has been started.
	Written() bool

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a request-scoped value in the request's context.Context,
	// so context extractors and later handlers can read it.
	Set(key, value any)

	// Get reads a value stored with Set.
	Get(key any) any
}

type requestContext struct {
	w      *ResponseWriter
	r      *http.Request
	logger *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{w: rw, r: r, logger: logger}
}

func (c *requestContext) Request() *http.Request        { return c.r }
func (c *requestContext) Response() http.ResponseWriter { return c.w }
func (c *requestContext) Context() context.Context      { return c.r.Context() }

func (c *requestContext) SetContext(ctx context.Context) {
	c.r = c.r.WithContext(ctx)
}

func (c *requestContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *requestContext) Err() error                  { return c.r.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.r.Context().Value(key) }

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.r, name)
}

func (c *requestContext) Query(name string) string {
	return c.r.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Header(name string) string {
	return c.r.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.w.Header().Set(name, value)
}

func (c *requestContext) Bind(v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(c.w, c.r.Body, DefaultMaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrBadRequest("request body is empty", WithError(err))
		}
		return ErrBadRequest("invalid JSON body", WithError(err))
	}
	return nil
}

func (c *requestContext) Body() ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(c.w, c.r.Body, DefaultMaxBodyBytes))
	if err != nil {
		return nil, ErrBadRequest("failed to read request body", WithError(err))
	}
	return data, nil
}

func (c *requestContext) JSON(code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return c.Blob(code, "application/json", data)
}

func (c *requestContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *requestContext) HTML(code int, s string) error {
	return c.Blob(code, "text/html; charset=utf-8", []byte(s))
}

func (c *requestContext) Blob(code int, contentType string, data []byte) error {
	c.w.Header().Set("Content-Type", contentType)
	c.w.WriteHeader(code)
	_, err := c.w.Write(data)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.w.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (c *requestContext) Written() bool {
	return c.w.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.r.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.r.Context().Value(key)
}
