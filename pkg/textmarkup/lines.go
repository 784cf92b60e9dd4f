package textmarkup

import "strings"

// lineIter walks input lines front to back with one element of look-ahead.
type lineIter struct {
	lines []string
	pos   int
}

func newLineIter(text string) *lineIter {
	return &lineIter{lines: strings.Split(strings.TrimSpace(text), "\n")}
}

// Next returns the next line and advances. ok is false once the input is exhausted.
func (it *lineIter) Next() (line string, ok bool) {
	if it.pos >= len(it.lines) {
		return "", false
	}
	line = it.lines[it.pos]
	it.pos++
	return line, true
}

// Peek returns the next line without consuming it.
func (it *lineIter) Peek() (line string, ok bool) {
	if it.pos >= len(it.lines) {
		return "", false
	}
	return it.lines[it.pos], true
}
