package pipeline

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// noLanguage is the class token used for fences with a blank info string.
const noLanguage = "none"

// codeBlockRenderer replaces goldmark's default code block output with a
// highlighted listing wrapped in a container carrying a line-number gutter
// and a copy control. Event wiring for the copy button is the UI's concern.
type codeBlockRenderer struct {
	formatter *chromahtml.Formatter
}

func newCodeBlockRenderer() *codeBlockRenderer {
	return &codeBlockRenderer{
		formatter: chromahtml.New(
			// Token classes rather than inline styles; the theme stylesheet
			// carries the colors. The decorator emits its own <pre>/<code>.
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	var infostring string
	if n.Info != nil {
		infostring = string(n.Info.Segment.Value(source))
	}
	_, _ = w.WriteString(r.renderCode(blockText(node, source), infostring))
	return ast.WalkSkipChildren, nil
}

func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(r.renderCode(blockText(node, source), ""))
	return ast.WalkSkipChildren, nil
}

// renderCode decorates one code block: language classes on <pre> and <code>,
// highlighted tokens, a line-number gutter, and a copy button.
//
// The info string may carry a comma-separated language list; every non-empty
// token becomes a language-<token> class. A lone blank token means the fence
// had no language and maps to "none". Only the first token selects the
// highlight grammar.
func (r *codeBlockRenderer) renderCode(code, infostring string) string {
	tokens := strings.Split(infostring, ",")

	var classes []string
	if len(tokens) == 1 && strings.TrimSpace(tokens[0]) == "" {
		tokens[0] = noLanguage
		classes = []string{"language-" + noLanguage}
	} else {
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			classes = append(classes, "language-"+tok)
		}
	}
	classAttr := stdhtml.EscapeString(strings.Join(classes, " "))

	var sb strings.Builder
	sb.WriteString(`<div class="code-block-wrapper">`)
	sb.WriteString(`<button type="button" class="copy-code-button">Copy</button>`)
	sb.WriteString(`<pre class="` + classAttr + `"><code class="` + classAttr + `">`)
	sb.WriteString(r.highlight(code, strings.TrimSpace(tokens[0])))
	sb.WriteString(lineNumberGutter(code))
	sb.WriteString(`</code></pre></div>`)
	return sb.String()
}

// highlight runs code through chroma when the grammar is known; an unknown
// or missing grammar degrades to plain escaped code.
func (r *codeBlockRenderer) highlight(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return stdhtml.EscapeString(code)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return stdhtml.EscapeString(code)
	}
	tokens := plainTokens(iterator.Tokens())

	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, styles.Fallback, chroma.Literator(tokens...)); err != nil {
		return stdhtml.EscapeString(code)
	}
	return buf.String()
}

// plainTokens retypes bare identifiers and whitespace to plain text, which
// the formatter emits without a span, keeping literal runs of source text
// contiguous. Keywords, strings, tags, and other styled tokens keep their
// token classes.
func plainTokens(tokens []chroma.Token) []chroma.Token {
	for i, tok := range tokens {
		switch tok.Type {
		case chroma.Name, chroma.NameOther, chroma.TextWhitespace:
			tokens[i].Type = chroma.Text
		}
	}
	return tokens
}

// lineNumberGutter renders one empty marker per code line, positioned by CSS
// as an overlay column. Rows = embedded newlines not at the very end + 1, so
// a trailing final newline does not add a phantom extra line.
func lineNumberGutter(code string) string {
	newlines := strings.Count(code, "\n")
	if strings.HasSuffix(code, "\n") {
		newlines--
	}
	rows := newlines + 1

	var sb strings.Builder
	sb.WriteString(`<span class="line-numbers-rows" aria-hidden="true">`)
	for i := 0; i < rows; i++ {
		sb.WriteString("<span></span>")
	}
	sb.WriteString("</span>")
	return sb.String()
}

// blockText concatenates a block node's line segments.
func blockText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return sb.String()
}
