package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceagent/invoiceagent/internal"
	"github.com/invoiceagent/invoiceagent/middlewares"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func newApp(h internal.HandlerFunc, opts ...internal.Option) *internal.App {
	opts = append(opts,
		internal.WithErrorHandler(middlewares.JSONErrorHandler()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", h)
			r.POST("/", h)
		})),
	)
	return internal.New(opts...)
}

func do(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) middlewares.ErrorBody {
	t.Helper()
	var body middlewares.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	echo := func(c internal.Context) error {
		return c.String(http.StatusOK, middlewares.GetRequestID(c))
	}

	t.Run("generates uuid", func(t *testing.T) {
		t.Parallel()

		w := do(newApp(echo, internal.WithMiddleware(middlewares.RequestID())), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-1")
		w := do(newApp(echo, internal.WithMiddleware(middlewares.RequestID())), req)
		assert.Equal(t, "corr-1", w.Body.String())
	})

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
			middlewares.WithRequestIDResponseHeader("X-Trace"),
			middlewares.WithRequestIDHeaders("X-Trace"),
		)
		w := do(newApp(echo, internal.WithMiddleware(mw)), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "fixed", w.Body.String())
		assert.Equal(t, "fixed", w.Header().Get("X-Trace"))
	})

	t.Run("extractor logs request id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), middlewares.RequestIDExtractor()))

		h := func(c internal.Context) error {
			c.LogInfo("handled")
			return c.NoContent(http.StatusNoContent)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		do(newApp(h, internal.WithCustomLogger(log), internal.WithMiddleware(middlewares.RequestID())), req)

		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})

	t.Run("extractor without id", func(t *testing.T) {
		t.Parallel()

		_, ok := middlewares.RequestIDExtractor()(context.Background())
		assert.False(t, ok)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	panics := func(c internal.Context) error {
		panic("template exploded")
	}

	t.Run("renders panic as 500", func(t *testing.T) {
		t.Parallel()

		w := do(newApp(panics, internal.WithMiddleware(middlewares.Recover())), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "An unexpected error occurred", errorBody(t, w).Error)
	})

	t.Run("captures stack", func(t *testing.T) {
		t.Parallel()

		var captured error
		handler := middlewares.Recover(middlewares.WithRecoverStackSize(1024))(panics)
		app := internal.New(
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				captured = err
				return c.NoContent(http.StatusInternalServerError)
			}),
			internal.WithHandlers(routes(func(r internal.Router) { r.GET("/", handler) })),
		)
		do(app, httptest.NewRequest(http.MethodGet, "/", nil))

		pe, ok := middlewares.AsPanicError(captured)
		require.True(t, ok)
		assert.Equal(t, "template exploded", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.LessOrEqual(t, len(pe.Stack), 1024)
		assert.Equal(t, "panic: template exploded", pe.Error())
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		var captured error
		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(panics)
		app := internal.New(
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				captured = err
				return c.NoContent(http.StatusInternalServerError)
			}),
			internal.WithHandlers(routes(func(r internal.Router) { r.GET("/", handler) })),
		)
		do(app, httptest.NewRequest(http.MethodGet, "/", nil))

		pe, ok := middlewares.AsPanicError(captured)
		require.True(t, ok)
		assert.Nil(t, pe.Stack)
	})

	t.Run("passes through", func(t *testing.T) {
		t.Parallel()

		ok := func(c internal.Context) error { return c.String(http.StatusOK, "fine") }
		w := do(newApp(ok, internal.WithMiddleware(middlewares.Recover())), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "fine", w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	ok := func(c internal.Context) error { return c.String(http.StatusOK, "ok") }

	t.Run("wildcard", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := do(newApp(ok, internal.WithMiddleware(middlewares.CORS())), req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "X-Request-ID, Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithMiddleware(middlewares.CORS()),
			internal.WithHandlers(routes(func(r internal.Router) {
				r.OPTIONS("/email", ok)
			})),
		)
		req := httptest.NewRequest(http.MethodOptions, "/email", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := do(app, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		t.Parallel()

		app := newApp(ok, internal.WithMiddleware(middlewares.CORS(
			middlewares.WithAllowOrigins("https://allowed.example.com"),
			middlewares.WithAllowCredentials(),
		)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://allowed.example.com")
		w := do(app, req)
		assert.Equal(t, "https://allowed.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = do(app, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origin", func(t *testing.T) {
		t.Parallel()

		w := do(newApp(ok, internal.WithMiddleware(middlewares.CORS())), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("times out", func(t *testing.T) {
		t.Parallel()

		slow := func(c internal.Context) error {
			<-c.Done()
			return c.Err()
		}
		app := newApp(slow, internal.WithMiddleware(middlewares.Timeout(20*time.Millisecond)))
		w := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Equal(t, "request timeout after 20ms", errorBody(t, w).Error)
	})

	t.Run("sets deadline", func(t *testing.T) {
		t.Parallel()

		fast := func(c internal.Context) error {
			_, ok := c.Deadline()
			if !ok {
				return errors.New("no deadline")
			}
			return c.String(http.StatusOK, "done")
		}
		w := do(newApp(fast, internal.WithMiddleware(middlewares.Timeout(time.Second))), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "done", w.Body.String())
	})
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"http error", internal.ErrBadRequest("Missing required fields"), http.StatusBadRequest, "Missing required fields"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "An unexpected error occurred: boom"},
		{"timeout", &middlewares.TimeoutError{Duration: time.Second}, http.StatusGatewayTimeout, "request timeout after 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newApp(func(internal.Context) error { return tt.err },
				internal.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "rid" }))))
			w := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, middlewares.ErrorBody{Success: false, Error: tt.msg, RequestID: "rid"}, errorBody(t, w))
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := newApp(func(c internal.Context) error { return nil },
		internal.WithNotFoundHandler(middlewares.NotFound()),
		internal.WithMethodNotAllowedHandler(middlewares.MethodNotAllowed()),
	)

	w := do(app, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found: GET /nope", errorBody(t, w).Error)

	w = do(app, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
