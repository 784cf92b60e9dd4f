// Package service holds the request-level operations shared by the HTTP
// server, the Lambda handlers and the CLI: sending an invoice email,
// previewing its body, generating the invoice document and converting
// invoice text to markup.
//
// Each call is a single linear request/response with no retries and no
// persisted state.
package service
