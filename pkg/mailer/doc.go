// Package mailer composes invoice emails and delivers them through a pluggable
// relay.
//
// # Architecture
//
//   - Sender: interface that relay providers implement (ses, resend, smtp)
//   - Mailer: validates a Message, renders its body and calls the Sender
//   - NewMIMEMessage: multipart builder shared by providers that need raw MIME
//
// # Usage
//
//	sender, err := ses.New(ctx, ses.Config{
//		Region:      "ap-southeast-2",
//		SenderEmail: "noreply@invoiceagent.com.au",
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.Config{BodyFormat: "text"})
//
//	receipt, err := m.SendInvoice(ctx, mailer.Message{
//		To:      "tenant@example.com",
//		Subject: "Rent invoice 00219",
//		Body:    body,
//		PDF:     pdf,
//	})
//
// # Body formats
//
// The body is converted to HTML according to its BodyFormat:
//
//   - text (default): the invoice text dialect, see package textmarkup
//   - markdown: goldmark with GFM and [!button|Label](URL) links; a YAML
//     frontmatter "subject" is used when Message.Subject is empty
//   - html: sent unchanged
//
// With Config.Sanitize the HTML is passed through sanitizer.SanitizeMarkup
// before sending. A layout loaded with LoadLayout wraps the final body.
//
// # Attachments
//
// A non-empty Message.PDF is attached as application/pdf, named
// Message.PDFFilename, Config.AttachmentName or "invoice.pdf" in that order.
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: presence checks
//   - ErrUnknownFormat: unsupported body format
//   - ErrRenderFailed, ErrInvalidFrontmatter, ErrLayoutNotFound: rendering
//   - ErrSendFailed: joined with the provider error on delivery failure
package mailer
