package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent/internal/lambdafn"
	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/pkg/logger"
)

func newLambdaCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "email",
			Short: "Send invoice emails from API Gateway events",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				log := app.logger("lambda.email", logger.LambdaRequestID())

				mail, err := app.cfg.NewMailer(cmd.Context())
				if err != nil {
					return err
				}

				h := lambdafn.NewEmailHandler(service.New(mail, nil, service.WithLogger(log)), log)
				lambda.Start(h.Handle)
				return nil
			},
		},
		&cobra.Command{
			Use:   "pdf",
			Short: "Render invoice PDFs from direct or API Gateway events",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				log := app.logger("lambda.pdf", logger.LambdaRequestID())

				docs, err := app.cfg.NewRenderer()
				if err != nil {
					return err
				}
				defer docs.Close()

				h := lambdafn.NewPDFHandler(service.New(nil, docs, service.WithLogger(log)), log)
				lambda.Start(h.Handle)
				return nil
			},
		},
	)
	return cmd
}
