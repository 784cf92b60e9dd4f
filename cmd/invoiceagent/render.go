package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent/internal/service"
	"github.com/invoiceagent/invoiceagent/pkg/invoice"
)

func newRenderCmd(app *cli) *cobra.Command {
	var (
		out    string
		asHTML bool
	)

	cmd := &cobra.Command{
		Use:   "render [invoice.json]",
		Short: "Render an invoice to PDF or HTML",
		Long: `Reads an invoice JSON document from file, or from stdin, and writes the
rendered PDF to --out. With --html the HTML page is written instead and no
browser is started. Without --out the PDF is written under the configured
filename in the current directory and HTML goes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var inv invoice.Invoice
			if err := json.Unmarshal([]byte(raw), &inv); err != nil {
				return fmt.Errorf("decode invoice: %w", err)
			}

			docs, err := app.cfg.NewRenderer()
			if err != nil {
				return err
			}
			defer docs.Close()

			svc := service.New(nil, docs)

			if asHTML {
				page, err := svc.InvoiceHTML(&inv)
				if err != nil {
					return err
				}
				if out == "" {
					_, err = fmt.Fprint(cmd.OutOrStdout(), page)
					return err
				}
				return writeFile(out, []byte(page))
			}

			res, err := svc.GenerateInvoice(cmd.Context(), &inv)
			if err != nil {
				return err
			}
			if out == "" {
				out = res.Filename
			}
			if err := writeFile(out, res.PDF); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(res.PDF))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().BoolVar(&asHTML, "html", false, "write HTML instead of PDF")
	return cmd
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
