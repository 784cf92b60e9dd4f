// Package config loads process configuration from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/invoiceagent/invoiceagent/pkg/document"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
	"github.com/invoiceagent/invoiceagent/pkg/mailer"
	"github.com/invoiceagent/invoiceagent/pkg/mailer/resend"
	"github.com/invoiceagent/invoiceagent/pkg/mailer/ses"
	"github.com/invoiceagent/invoiceagent/pkg/mailer/smtp"
)

// ErrUnknownProvider is returned for an unsupported MAILER_PROVIDER value.
var ErrUnknownProvider = errors.New("unknown mail provider")

const (
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// Config is the full process configuration.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	ProfilePath     string        `env:"INVOICE_PROFILE"`

	Logger   logger.Config
	Mailer   mailer.Config
	SES      ses.Config
	Resend   resend.Config
	SMTP     smtp.Config
	Document document.Config
}

// Load parses Config from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Profile returns the issuer profile at ProfilePath, or the embedded default
// when no path is set.
func (c Config) Profile() (*invoice.Profile, error) {
	if c.ProfilePath == "" {
		return invoice.DefaultProfile(), nil
	}
	return invoice.LoadProfile(c.ProfilePath)
}

// Sender builds the mail transport selected by MAILER_PROVIDER.
func (c Config) Sender(ctx context.Context) (mailer.Sender, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mailer.Provider)) {
	case ProviderSES, "":
		return ses.New(ctx, c.SES)
	case ProviderResend:
		return resend.New(c.Resend)
	case ProviderSMTP:
		return smtp.New(c.SMTP), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, c.Mailer.Provider)
	}
}

// NewMailer builds the invoice mailer on top of the selected transport.
// MAILER_LAYOUT, when set, names an HTML file that wraps every body.
func (c Config) NewMailer(ctx context.Context) (*mailer.Mailer, error) {
	sender, err := c.Sender(ctx)
	if err != nil {
		return nil, err
	}

	var opts []mailer.Option
	if p := c.Mailer.Layout; p != "" {
		tmpl, err := mailer.LoadLayout(os.DirFS(filepath.Dir(p)), filepath.Base(p))
		if err != nil {
			return nil, err
		}
		opts = append(opts, mailer.WithLayout(tmpl))
	}
	return mailer.New(sender, c.Mailer, opts...), nil
}

// NewRenderer builds the invoice renderer backed by a headless browser.
func (c Config) NewRenderer() (*document.Renderer, error) {
	profile, err := c.Profile()
	if err != nil {
		return nil, err
	}
	return document.New(
		document.NewRodConverter(c.Document),
		profile,
		document.WithFilename(c.Document.Filename),
	), nil
}
