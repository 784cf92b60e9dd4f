package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a markdown body with its optional YAML frontmatter.
type Document struct {
	Metadata map[string]any
	Body     string
}

// String returns the metadata value for key as a string. Keys are matched
// case-insensitively so "Subject" and "subject" are equivalent.
func (d *Document) String(key string) string {
	for k, v := range d.Metadata {
		if !strings.EqualFold(k, key) {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// ParseFrontmatter splits content into YAML frontmatter and markdown body.
// Content without a leading "---" line is returned unchanged as the body.
func ParseFrontmatter(content []byte) (*Document, error) {
	delimiter := []byte("---")

	// Check if content starts with delimiter
	if !bytes.HasPrefix(content, delimiter) {
		return &Document{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	// Find the end of frontmatter (second occurrence of ---)
	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")

	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	frontmatterBytes := afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	// Skip one newline after closing delimiter (handles both \r\n and \n)
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2 // Skip \r\n
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++ // Skip \n
		}
	}
	body := afterFirst[bodyStart:]

	var metadata map[string]any
	if len(bytes.TrimSpace(frontmatterBytes)) > 0 {
		if err := yaml.Unmarshal(frontmatterBytes, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	} else {
		metadata = make(map[string]any)
	}

	return &Document{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}
