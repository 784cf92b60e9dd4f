package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/invoiceagent/invoiceagent/internal/service"
)

func newMarkupCmd() *cobra.Command {
	var escape, explain bool

	cmd := &cobra.Command{
		Use:   "markup [file]",
		Short: "Convert invoice text to an HTML fragment",
		Long: `Reads invoice text from file, or from stdin when no file is given, and
prints the HTML fragment. With --explain it prints the class of each line
instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			svc := service.New(nil, nil)
			out := cmd.OutOrStdout()

			if explain {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, li := range svc.ExplainMarkup(text) {
					fmt.Fprintf(tw, "%s\t%q\n", li.Class, li.Line)
				}
				return tw.Flush()
			}

			_, err = fmt.Fprintln(out, svc.ConvertMarkup(text, escape))
			return err
		},
	}

	cmd.Flags().BoolVar(&escape, "escape", false, "HTML-escape line content")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the class of each line")
	return cmd
}

// readInput returns the contents of args[0], or of stdin when no argument
// is given or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
