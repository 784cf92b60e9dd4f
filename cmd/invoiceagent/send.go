package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent/internal/service"
)

func newSendCmd(app *cli) *cobra.Command {
	var (
		req      service.EmailRequest
		bodyFile string
		pdfFile  string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one invoice email",
		Long: `Sends an invoice email through the configured provider. The body is read
from --body-file (or stdin) and an optional PDF is attached from --pdf.
The result is printed as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var args []string
			if bodyFile != "" {
				args = []string{bodyFile}
			}
			body, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			req.EmailBody = body

			if pdfFile != "" {
				data, err := os.ReadFile(pdfFile)
				if err != nil {
					return fmt.Errorf("read pdf: %w", err)
				}
				req.PDFData = base64.StdEncoding.EncodeToString(data)
				if req.PDFFilename == "" {
					req.PDFFilename = filepath.Base(pdfFile)
				}
			}

			mail, err := app.cfg.NewMailer(cmd.Context())
			if err != nil {
				return err
			}

			log := app.logger("cli.send")
			res, err := service.New(mail, nil, service.WithLogger(log)).SendEmail(cmd.Context(), req)
			if err != nil {
				_, msg := service.ErrorResponse(err)
				return errors.New(msg)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&req.To, "to", "", "recipient address")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&req.BodyFormat, "format", "", "body format: text, markdown or html")
	cmd.Flags().StringVar(&req.PDFFilename, "pdf-name", "", "attachment filename (defaults to the --pdf file name)")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "file holding the email body (stdin when empty)")
	cmd.Flags().StringVar(&pdfFile, "pdf", "", "PDF file to attach")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
