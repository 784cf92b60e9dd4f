package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
)

// LoadLayout parses an HTML layout from fsys. The layout receives the rendered
// body as {{.Content}}.
func LoadLayout(fsys fs.FS, name string) (*template.Template, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}
	return tmpl, nil
}

func applyLayout(tmpl *template.Template, content string) (string, error) {
	var buf bytes.Buffer
	data := map[string]any{
		"Content": template.HTML(content), //nolint:gosec
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}
	return buf.String(), nil
}
