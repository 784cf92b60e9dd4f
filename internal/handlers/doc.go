// Package handlers exposes the invoice service over HTTP.
//
//	POST /email            send an invoice email (JSON EmailRequest)
//	POST /email/preview    render the email body to HTML without sending
//	POST /markup           convert invoice text to an HTML fragment
//	POST /invoice/pdf      render an invoice to PDF (?format=base64 for JSON)
//	POST /invoice/html     render an invoice to HTML
//
// Failures use the {"success": false, "error": ...} envelope with the same
// status codes and messages as the Lambda functions.
package handlers
