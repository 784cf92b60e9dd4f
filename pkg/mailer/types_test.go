package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("invoice", "rent")
	require.Len(t, tags, 2)
	assert.Equal(t, struct{}{}, tags["invoice"])

	assert.Empty(t, SimpleTags())
}

func TestTags_Pairs(t *testing.T) {
	t.Parallel()

	tags := Tags{"invoice": struct{}{}, "number": "00219", "month": 1}
	assert.Equal(t, map[string]string{
		"invoice": "true",
		"number":  "00219",
		"month":   "1",
	}, tags.Pairs())
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invoice Agent <noreply@invoiceagent.com.au>", Recipient("Invoice Agent", "noreply@invoiceagent.com.au"))
	assert.Equal(t, "tenant@example.com", Recipient("", "tenant@example.com"))
}

func TestEmail_Recipients(t *testing.T) {
	t.Parallel()

	e := &Email{To: []string{"a@example.com"}, CC: []string{"b@example.com"}, BCC: []string{"c@example.com"}}
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, e.Recipients())
	assert.False(t, e.HasAttachments())

	e.Attachments = []Attachment{PDFAttachment("invoice.pdf", []byte("%PDF"))}
	assert.True(t, e.HasAttachments())
	assert.Equal(t, PDFContentType, e.Attachments[0].ContentType)
}
