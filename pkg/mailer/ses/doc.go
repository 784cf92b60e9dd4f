// Package ses delivers mail through Amazon SES (API v2).
//
// Messages without attachments are sent as simple content. Messages with
// attachments or custom headers are rendered to MIME with mailer.RawMessage
// and sent raw. API failures are returned as *mailer.RelayError carrying the
// SES error message, joined with ErrRejected or ErrThrottled where the error
// code says so.
package ses
