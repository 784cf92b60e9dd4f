package textmarkup

import (
	"html"
	"strings"
	"unicode"
)

// scanState is the block state carried from one line to the next.
type scanState struct {
	bankLines   []string
	inList      bool
	inBankBlock bool
}

// fragment collects the produced markup blocks in order.
type fragment struct {
	cfg    *config
	blocks []string
}

// Convert turns a text body into an HTML fragment, one block per line of output.
func Convert(text string, opts ...Option) string {
	return strings.Join(Blocks(text, opts...), "\n")
}

// Blocks is like Convert but returns the markup blocks without joining them.
func Blocks(text string, opts ...Option) []string {
	out := &fragment{cfg: newConfig(opts...)}
	it := newLineIter(text)

	var st scanState
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		st = out.step(st, line, it)
	}

	st = out.closeList(st)
	out.flushBank(st)

	return out.blocks
}

// step consumes one line (two for a signature) and returns the next state.
func (f *fragment) step(st scanState, raw string, it *lineIter) scanState {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		// Blank lines end lists but leave a bank block open.
		return f.closeList(st)

	case isBullet(line):
		if !st.inList {
			f.emit("<ul>")
			st.inList = true
		}
		item := strings.TrimLeftFunc(line, unicode.IsSpace)[len(bulletMarker):]
		f.emit("<li>" + f.text(item) + "</li>")
		return st

	case strings.HasPrefix(line, indentPrefix):
		st.inBankBlock = true
		st.bankLines = append(st.bankLines, f.text(trimmed))
		return st
	}

	st = f.flushBank(st)
	st = f.closeList(st)

	if isSignatureLead(trimmed) {
		if next, ok := it.Peek(); ok {
			it.Next()
			f.emit("<p>Thanks,<br>" + f.text(strings.TrimSpace(next)) + "</p>")
			return st
		}
	}

	if isPaymentLead(trimmed) {
		f.emit("<br><p>" + f.text(line) + "</p>")
		return st
	}

	f.emit("<p>" + f.text(line) + "</p>")
	return st
}

func (f *fragment) flushBank(st scanState) scanState {
	if !st.inBankBlock {
		return st
	}
	f.emit("<div style='" + f.cfg.bankBlockStyle + "'>" + strings.Join(st.bankLines, "<br>") + "</div>")
	return scanState{inList: st.inList}
}

func (f *fragment) closeList(st scanState) scanState {
	if !st.inList {
		return st
	}
	f.emit("</ul>")
	st.inList = false
	return st
}

func (f *fragment) emit(block string) {
	f.blocks = append(f.blocks, block)
}

func (f *fragment) text(s string) string {
	if f.cfg.escape {
		return html.EscapeString(s)
	}
	return s
}
