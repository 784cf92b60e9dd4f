package textmarkup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

const invoiceBody = `Hi Team,

* Rent = $100
* GST = $10

    Michael Sutanto
    BSB: 083-028

Please pay promptly.

Thanks,
Michael`

func TestConvert_InvoiceBody(t *testing.T) {
	t.Parallel()

	want := []string{
		"<p>Hi Team,</p>",
		"<ul>",
		"<li>Rent = $100</li>",
		"<li>GST = $10</li>",
		"</ul>",
		"<div style='margin-left: 36px;'>Michael Sutanto<br>BSB: 083-028</div>",
		"<br><p>Please pay promptly.</p>",
		"<p>Thanks,<br>Michael</p>",
	}

	assert.Equal(t, want, textmarkup.Blocks(invoiceBody))
	assert.Equal(t, strings.Join(want, "\n"), textmarkup.Convert(invoiceBody))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t\n  ",
			want:  nil,
		},
		{
			name:  "single paragraph keeps leading whitespace of later lines",
			input: "first\n  second  ",
			want:  []string{"<p>first</p>", "<p>  second</p>"},
		},
		{
			name:  "first line indentation is trimmed with the body",
			input: "    Michael Sutanto\nnext",
			want:  []string{"<p>Michael Sutanto</p>", "<p>next</p>"},
		},
		{
			name:  "bullet after leading whitespace",
			input: "intro\n  * item",
			want:  []string{"<p>intro</p>", "<ul>", "<li>item</li>", "</ul>"},
		},
		{
			name:  "indented bullet is still a bullet",
			input: "intro\n    * item",
			want:  []string{"<p>intro</p>", "<ul>", "<li>item</li>", "</ul>"},
		},
		{
			name:  "bullet keeps text after the two character marker",
			input: "*  spaced",
			want:  []string{"<ul>", "<li> spaced</li>", "</ul>"},
		},
		{
			name:  "bare asterisk is a paragraph",
			input: "intro\n* \nend",
			want:  []string{"<p>intro</p>", "<p>*</p>", "<p>end</p>"},
		},
		{
			name:  "three leading spaces are not indented",
			input: "intro\n   BSB: 083-028",
			want:  []string{"<p>intro</p>", "<p>   BSB: 083-028</p>"},
		},
		{
			name:  "tab indentation is not indented",
			input: "intro\n\tBSB: 083-028",
			want:  []string{"<p>intro</p>", "<p>\tBSB: 083-028</p>"},
		},
		{
			name:  "blank line does not flush bank block",
			input: "intro\n    a\n\n    b\nafter",
			want: []string{
				"<p>intro</p>",
				"<div style='margin-left: 36px;'>a<br>b</div>",
				"<p>after</p>",
			},
		},
		{
			name:  "bank block flushed before list close",
			input: "intro\n* item\n    a\nafter",
			want: []string{
				"<p>intro</p>",
				"<ul>",
				"<li>item</li>",
				"<div style='margin-left: 36px;'>a</div>",
				"</ul>",
				"<p>after</p>",
			},
		},
		{
			name:  "input ending in a list closes it",
			input: "intro\n* a\n* b",
			want:  []string{"<p>intro</p>", "<ul>", "<li>a</li>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "input ending in a bank block flushes it",
			input: "intro\n    a\n    b",
			want:  []string{"<p>intro</p>", "<div style='margin-left: 36px;'>a<br>b</div>"},
		},
		{
			name:  "final flush closes list before bank block",
			input: "intro\n    a\n* item",
			want: []string{
				"<p>intro</p>",
				"<ul>",
				"<li>item</li>",
				"</ul>",
				"<div style='margin-left: 36px;'>a</div>",
			},
		},
		{
			name:  "blank lines split lists",
			input: "* a\n\n* b",
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<ul>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "signature is case insensitive and normalized",
			input: "intro\nTHANKS,\n  Michael  ",
			want:  []string{"<p>intro</p>", "<p>Thanks,<br>Michael</p>"},
		},
		{
			name:  "trailing thanks without follow-up is a paragraph",
			input: "intro\nThanks,",
			want:  []string{"<p>intro</p>", "<p>Thanks,</p>"},
		},
		{
			name:  "signature consumes a blank next line",
			input: "Thanks,\n\nMichael",
			want:  []string{"<p>Thanks,<br></p>", "<p>Michael</p>"},
		},
		{
			name:  "signature consumes an indented next line",
			input: "Thanks,\n    Michael",
			want:  []string{"<p>Thanks,<br>Michael</p>"},
		},
		{
			name:  "thanks with trailing text is a paragraph",
			input: "Thanks, Michael",
			want:  []string{"<p>Thanks, Michael</p>"},
		},
		{
			name:  "payment lead is case insensitive",
			input: "intro\nPLEASE PAY to the following account:",
			want:  []string{"<p>intro</p>", "<br><p>PLEASE PAY to the following account:</p>"},
		},
		{
			name:  "crlf line endings",
			input: "Hi,\r\n* a\r\n\r\nThanks,\r\nMichael\r\n",
			want:  []string{"<p>Hi,</p>", "<ul>", "<li>a</li>", "</ul>", "<p>Thanks,<br>Michael</p>"},
		},
		{
			name:  "html passes through unescaped",
			input: "<b>bold</b> & more",
			want:  []string{"<p><b>bold</b> & more</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textmarkup.Blocks(tt.input))
		})
	}
}

func TestConvert_WithEscaping(t *testing.T) {
	t.Parallel()

	input := "<script>x</script>\n* a & b\n    <acc>\nThanks,\n<Michael>"
	got := textmarkup.Blocks(input, textmarkup.WithEscaping())

	require.Equal(t, []string{
		"<p>&lt;script&gt;x&lt;/script&gt;</p>",
		"<ul>",
		"<li>a &amp; b</li>",
		"<div style='margin-left: 36px;'>&lt;acc&gt;</div>",
		"</ul>",
		"<p>Thanks,<br>&lt;Michael&gt;</p>",
	}, got)
}

func TestConvert_WithBankBlockStyle(t *testing.T) {
	t.Parallel()

	got := textmarkup.Convert("intro\n    a", textmarkup.WithBankBlockStyle("padding-left: 2em;"))
	assert.Equal(t, "<p>intro</p>\n<div style='padding-left: 2em;'>a</div>", got)

	got = textmarkup.Convert("intro\n    a", textmarkup.WithBankBlockStyle(""))
	assert.Equal(t, "<p>intro</p>\n<div style='margin-left: 36px;'>a</div>", got)
}

func TestConvert_Properties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		invoiceBody,
		"* a\n* b",
		"* a\n    b\n* c\n\n    d",
		"    x\n\n\n    y\n* z\nThanks,",
		"Thanks,\nThanks,\nThanks,",
		"\n\n* \n*\n* *\n",
	}

	for _, in := range inputs {
		first := textmarkup.Convert(in)
		assert.Equal(t, first, textmarkup.Convert(in), "conversion must be repeatable")
		assert.Equal(t, strings.Count(first, "<ul>"), strings.Count(first, "</ul>"), "unbalanced list in %q", first)
		assert.Equal(t, strings.Count(first, "<div"), strings.Count(first, "</div>"), "unbalanced block in %q", first)
	}
}

func TestConvert_OneDivPerBankRun(t *testing.T) {
	t.Parallel()

	got := textmarkup.Blocks("intro\n    a\n    b\nmiddle\n    c\nend")
	assert.Equal(t, []string{
		"<p>intro</p>",
		"<div style='margin-left: 36px;'>a<br>b</div>",
		"<p>middle</p>",
		"<div style='margin-left: 36px;'>c</div>",
		"<p>end</p>",
	}, got)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want textmarkup.LineClass
	}{
		{"", textmarkup.Blank},
		{"   \t", textmarkup.Blank},
		{"* item", textmarkup.Bullet},
		{"   * item", textmarkup.Bullet},
		{"    BSB: 083-028", textmarkup.Indented},
		{"   BSB", textmarkup.Paragraph},
		{"Thanks,", textmarkup.SignatureLead},
		{"  thanks,  ", textmarkup.SignatureLead},
		{"Please pay by Friday", textmarkup.PaymentLead},
		{"please payable", textmarkup.PaymentLead},
		{"Hello", textmarkup.Paragraph},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, textmarkup.Classify(tt.line), "line %q", tt.line)
	}
}

func TestLineClass_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blank", textmarkup.Blank.String())
	assert.Equal(t, "signature", textmarkup.SignatureLead.String())
	assert.Equal(t, "paragraph", textmarkup.Paragraph.String())
	assert.Equal(t, "unknown", textmarkup.LineClass(42).String())
}
