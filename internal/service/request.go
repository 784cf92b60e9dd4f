package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EmailRequest is the payload accepted by the email endpoints.
type EmailRequest struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	EmailBody   string `json:"email_body"`
	PDFData     string `json:"pdf_data,omitempty"`
	PDFFilename string `json:"pdf_filename,omitempty"`
	BodyFormat  string `json:"body_format,omitempty"`
}

// Validate checks that to, subject and email_body are present.
func (r EmailRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.To, validation.Required),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.EmailBody, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return nil
}

// EmailResult is the success envelope of a sent email.
type EmailResult struct {
	Success       bool   `json:"success"`
	MessageID     string `json:"messageId"`
	Message       string `json:"message"`
	HasAttachment bool   `json:"hasAttachment"`
}

// MarkupRequest is the payload accepted by the markup endpoint.
type MarkupRequest struct {
	Text   string `json:"text"`
	Escape bool   `json:"escape,omitempty"`
}

// decodePDF accepts standard or unpadded base64, with or without a data URI
// prefix and embedded line breaks.
func decodePDF(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if i := strings.Index(data, ";base64,"); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+len(";base64,"):]
	}
	data = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, data)

	if b, err := base64.StdEncoding.DecodeString(data); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
}
