package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta map[string]any
		wantBody string
	}{
		{
			name:     "subject and body",
			input:    "---\nSubject: Rent invoice 00219\n---\n# January\n\nRent is due.\n",
			wantMeta: map[string]any{"Subject": "Rent invoice 00219"},
			wantBody: "# January\n\nRent is due.\n",
		},
		{
			name:     "no frontmatter",
			input:    "Hi,\n\nPlease pay by Friday.",
			wantMeta: map[string]any{},
			wantBody: "Hi,\n\nPlease pay by Friday.",
		},
		{
			name:     "empty frontmatter",
			input:    "---\n---\nBody",
			wantMeta: map[string]any{},
			wantBody: "Body",
		},
		{
			name:     "windows line endings",
			input:    "---\r\nsubject: Hi\r\n---\r\nBody",
			wantMeta: map[string]any{"subject": "Hi"},
			wantBody: "Body",
		},
		{
			name:     "numeric values",
			input:    "---\ninvoice: 219\n---\n",
			wantMeta: map[string]any{"invoice": 219},
			wantBody: "",
		},
		{
			name:     "delimiters later in body are kept",
			input:    "---\na: b\n---\nabove\n---\nbelow",
			wantMeta: map[string]any{"a": "b"},
			wantBody: "above\n---\nbelow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseFrontmatter([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, doc.Metadata)
			assert.Equal(t, tt.wantBody, doc.Body)
		})
	}
}

func TestParseFrontmatter_Invalid(t *testing.T) {
	t.Parallel()

	for name, input := range map[string]string{
		"missing closing delimiter": "---\nSubject: x\nbody",
		"only opening delimiter":    "---\n",
		"invalid yaml":              "---\nSubject: [unclosed\n---\nbody",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFrontmatter([]byte(input))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}

func TestDocument_String(t *testing.T) {
	t.Parallel()

	doc := &Document{Metadata: map[string]any{"Subject": "Invoice", "number": 219}}

	assert.Equal(t, "Invoice", doc.String("subject"))
	assert.Equal(t, "219", doc.String("NUMBER"))
	assert.Empty(t, doc.String("missing"))
}
