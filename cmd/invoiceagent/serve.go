package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent"
	"github.com/invoiceagent/invoiceagent/internal/handlers"
	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/middlewares"
	"github.com/invoiceagent/invoiceagent/pkg/health"
)

func newServeCmd(app *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.cfg.Addr
			}
			return serve(cmd.Context(), app, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, app *cli, addr string) error {
	log := app.logger("http", invoiceagent.RequestIDExtractor())

	mail, err := app.cfg.NewMailer(ctx)
	if err != nil {
		return err
	}
	docs, err := app.cfg.NewRenderer()
	if err != nil {
		return err
	}

	svc := service.New(mail, docs, service.WithLogger(log))

	server := invoiceagent.New(
		invoiceagent.WithCustomLogger(log),
		invoiceagent.WithMiddleware(invoiceagent.DefaultMiddlewares()...),
		invoiceagent.WithErrorHandler(middlewares.JSONErrorHandler()),
		invoiceagent.WithNotFoundHandler(middlewares.NotFound()),
		invoiceagent.WithMethodNotAllowedHandler(middlewares.MethodNotAllowed()),
		invoiceagent.WithHealthChecks(
			invoiceagent.WithReadinessCheck("mailer", health.FromPinger(mail)),
			invoiceagent.WithReadinessCheck("renderer", health.FromPinger(docs)),
		),
		invoiceagent.WithHandlers(
			handlers.NewEmail(svc),
			handlers.NewMarkup(svc),
			handlers.NewInvoice(svc, app.cfg.Document.Timeout),
		),
	)

	return server.Run(addr,
		invoiceagent.WithContext(ctx),
		invoiceagent.Logger(log),
		invoiceagent.ShutdownTimeout(app.cfg.ShutdownTimeout),
		invoiceagent.ShutdownHook(func(context.Context) error {
			return docs.Close()
		}),
	)
}
