package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ButtonNode is a call-to-action link, written [!button|Label](URL).
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

// Kind implements ast.Node.
func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

// Dump implements ast.Node.
func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

var buttonPrefix = []byte("[!button|")

// Email clients drop <style> blocks, so buttons carry inline CSS.
const buttonStyle = "display:inline-block;padding:10px 18px;background:#1a1a1a;" +
	"color:#ffffff;text-decoration:none;border-radius:4px;font-weight:bold;"

type buttonParser struct{}

// NewButtonParser creates the inline parser for button links.
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (p *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (p *buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonPrefix) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 0 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}

	target := rest[labelEnd+2:]
	urlEnd := bytes.IndexByte(target, ')')
	if urlEnd < 0 {
		return nil
	}

	block.Advance(len(buttonPrefix) + labelEnd + 2 + urlEnd + 1)

	return &ButtonNode{
		Label: rest[:labelEnd],
		URL:   target[:urlEnd],
	}
}

type buttonRenderer struct {
	html.Config
}

// NewButtonRenderer creates the HTML renderer for ButtonNode.
func NewButtonRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &buttonRenderer{Config: html.NewConfig()}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)

	// Unsafe schemes degrade to the bare label.
	if html.IsDangerousURL(n.URL) {
		_, _ = w.Write(util.EscapeHTML(n.Label))
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, false)))
	_, _ = w.WriteString(`" class="btn" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// ButtonExtension registers the button syntax with goldmark.
type ButtonExtension struct{}

// Extend implements goldmark.Extender.
func (e *ButtonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(), 50),
	))
}

// NewButtonExtension creates the button extension, used for "pay now" links
// in markdown bodies.
func NewButtonExtension() goldmark.Extender {
	return &ButtonExtension{}
}
