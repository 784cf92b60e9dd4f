package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMarkupCmd(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "Hi Team,\n* Rent = $100", "markup")
		require.NoError(t, err)
		assert.Equal(t, "<p>Hi Team,</p>\n<ul>\n<li>Rent = $100</li>\n</ul>\n", out)
	})

	t.Run("file with escaping", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "body.txt")
		require.NoError(t, os.WriteFile(path, []byte("a <b> c"), 0o600))

		out, err := run(t, "", "markup", "--escape", path)
		require.NoError(t, err)
		assert.Equal(t, "<p>a &lt;b&gt; c</p>\n", out)
	})

	t.Run("explain", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "Hi,\n* Rent", "markup", "--explain")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "paragraph"))
		assert.True(t, strings.HasPrefix(lines[1], "bullet"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "", "markup", filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
	})
}

func TestRenderCmd_HTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "invoice.json")
	require.NoError(t, os.WriteFile(in, []byte(`{
		"date": "2026-01-15",
		"invoice_number": "INV-7",
		"items": [{"description": "Rent", "amount": 4500}]
	}`), 0o600))

	out, err := run(t, "", "render", "--html", in)
	require.NoError(t, err)
	assert.Contains(t, out, "INV-7")

	target := filepath.Join(dir, "invoice.html")
	_, err = run(t, "", "render", "--html", "--out", target, in)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rent")
}

func TestRenderCmd_InvalidInvoice(t *testing.T) {
	t.Parallel()

	_, err := run(t, `{"date":"soon"}`, "render", "--html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invoice")

	_, err = run(t, `not json`, "render", "--html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode invoice")
}

func TestSendCmd_RequiresFlags(t *testing.T) {
	t.Parallel()

	_, err := run(t, "Hello", "send")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
