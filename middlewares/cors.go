package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/invoiceagent/invoiceagent/internal"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight response.
const DefaultCORSMaxAge = 12 * time.Hour

// CORSConfig configures the CORS middleware. The zero value of each field
// falls back to the defaults used by the invoice API: any origin, GET/POST/
// OPTIONS, and the request ID and Content-Disposition headers exposed.
type CORSConfig struct {
	AllowOrigins     []string
	AllowOriginFunc  func(origin string) bool
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins. "*" allows any origin.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowOriginFunc decides per origin, overriding AllowOrigins.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOriginFunc = fn
	}
}

// WithAllowHeaders sets the headers allowed in preflight requests.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithAllowCredentials reflects the origin and allows credentials.
func WithAllowCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = true
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(d time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = d
	}
}

type corsPolicy struct {
	cfg           CORSConfig
	wildcard      bool
	allowMethods  string
	allowHeaders  string
	exposeHeaders string
	maxAge        string
}

func newCORSPolicy(opts ...CORSOption) *corsPolicy {
	cfg := CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &corsPolicy{
		cfg:           cfg,
		wildcard:      slices.Contains(cfg.AllowOrigins, "*"),
		allowMethods:  strings.Join(cfg.AllowMethods, ", "),
		allowHeaders:  strings.Join(cfg.AllowHeaders, ", "),
		exposeHeaders: strings.Join(cfg.ExposeHeaders, ", "),
		maxAge:        strconv.Itoa(int(cfg.MaxAge.Seconds())),
	}
}

func (p *corsPolicy) allows(origin string) bool {
	if p.cfg.AllowOriginFunc != nil {
		return p.cfg.AllowOriginFunc(origin)
	}
	return p.wildcard || slices.Contains(p.cfg.AllowOrigins, origin)
}

// CORS answers preflight requests and adds CORS headers to responses for
// allowed origins. Requests without an Origin header pass through untouched.
func CORS(opts ...CORSOption) internal.Middleware {
	p := newCORSPolicy(opts...)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !p.allows(origin) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")

			if p.cfg.AllowCredentials || !p.wildcard {
				h.Set("Access-Control-Allow-Origin", origin)
			} else {
				h.Set("Access-Control-Allow-Origin", "*")
			}
			if p.cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if p.exposeHeaders != "" {
				h.Set("Access-Control-Expose-Headers", p.exposeHeaders)
			}

			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", p.allowMethods)
			h.Set("Access-Control-Allow-Headers", p.allowHeaders)
			if p.cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", p.maxAge)
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}
