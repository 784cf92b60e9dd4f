// Command invoiceagent renders invoices, converts invoice text to HTML and
// sends invoice emails. It runs as an HTTP server, as either of the two
// Lambda functions, or as a one-shot CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
