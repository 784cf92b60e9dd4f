package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent/internal/config"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
)

const flushTimeout = 2 * time.Second

// cli carries state shared by subcommands once the root pre-run has loaded
// the environment.
type cli struct {
	cfg config.Config
}

func (c *cli) logger(component string, extractors ...logger.ContextExtractor) *slog.Logger {
	return logger.NewFromConfig(c.cfg.Logger, extractors...).With(slog.String("component", component))
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	var (
		profile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "invoiceagent",
		Short: "Invoice rendering and delivery",
		Long: `invoiceagent turns plain-text invoice bodies into HTML, renders invoices
to PDF with a headless browser and sends them by email through SES, Resend
or SMTP.

Configuration is read from the environment (HTTP_ADDR, MAILER_PROVIDER,
SES_*, RESEND_*, SMTP_*, DOCUMENT_*, LOG_*, SENTRY_*). Flags override the
matching variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if profile != "" {
				cfg.ProfilePath = profile
			}
			if logLevel != "" {
				cfg.Logger.Level = logLevel
			}
			app.cfg = cfg
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Flush(flushTimeout)
		},
	}

	cmd.PersistentFlags().StringVar(&profile, "profile", "", "issuer profile YAML (overrides INVOICE_PROFILE)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	cmd.AddCommand(
		newServeCmd(app),
		newLambdaCmd(app),
		newMarkupCmd(),
		newRenderCmd(app),
		newSendCmd(app),
	)
	return cmd
}
